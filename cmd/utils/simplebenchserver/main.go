// Command simplebenchserver serves a fixed-size payload, optionally
// with artificial latency, as a target for httpbench runs.
package main

import (
	"log"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/valyala/fasthttp"
)

var serverPort = kingpin.Flag("port", "port to use for benchmarks").
	Default("8080").
	Short('p').
	String()
var responseSize = kingpin.Flag("size", "size of response in bytes").
	Default("1024").
	Short('s').
	Uint()
var responseDelay = kingpin.Flag("delay", "artificial delay before each response").
	Default("0s").
	Short('d').
	Duration()

func main() {
	kingpin.Parse()
	response := strings.Repeat("a", int(*responseSize))
	delay := *responseDelay
	addr := "localhost:" + *serverPort
	log.Println("Starting HTTP server on:", addr)
	err := fasthttp.ListenAndServe(addr, func(c *fasthttp.RequestCtx) {
		if delay > 0 {
			time.Sleep(delay)
		}
		_, werr := c.WriteString(response)
		if werr != nil {
			log.Println(werr)
		}
	})
	if err != nil {
		log.Println(err)
	}
}
