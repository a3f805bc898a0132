package decibench

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testReport(t *testing.T, throughput *Throughput) *Report {
	t.Helper()
	r, err := NewRunner(testRunnerConfig(), NewDecimalByteMeasurement())
	if err != nil {
		t.Fatal(err)
	}
	fn := func() {
		time.Sleep(10 * time.Microsecond)
	}
	if throughput != nil {
		return r.BenchmarkThroughput("report-test", *throughput, fn)
	}
	return r.Benchmark("report-test", fn)
}

func TestReportPlainTextOutput(t *testing.T) {
	tp := Bytes(1000000)
	rep := testReport(t, &tp)
	out := new(bytes.Buffer)
	if err := rep.Print(out, "plain-text", true); err != nil {
		t.Fatal(err)
	}
	rendered := out.String()
	for _, want := range []string{
		"report-test",
		"Statistics",
		"Time",
		"Rate",
		"Latency Distribution",
		"Processed:",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("output should contain %q:\n%v", want, rendered)
		}
	}
}

func TestReportPlainTextWithoutThroughput(t *testing.T) {
	rep := testReport(t, nil)
	out := new(bytes.Buffer)
	if err := rep.Print(out, "pt", false); err != nil {
		t.Fatal(err)
	}
	rendered := out.String()
	if strings.Contains(rendered, "Rate") {
		t.Errorf("output shouldn't contain a rate row:\n%v", rendered)
	}
	if strings.Contains(rendered, "Processed:") {
		t.Errorf("output shouldn't contain a processed row:\n%v", rendered)
	}
}

func TestReportJSONOutput(t *testing.T) {
	tp := Elements(5000)
	rep := testReport(t, &tp)
	out := new(bytes.Buffer)
	if err := rep.Print(out, "json", false); err != nil {
		t.Fatal(err)
	}
	var parsed struct {
		Spec struct {
			Name        string `json:"name"`
			SampleCount int    `json:"sampleCount"`
			Throughput  struct {
				Kind  string `json:"kind"`
				Count uint64 `json:"count"`
			} `json:"throughput"`
		} `json:"spec"`
		Result struct {
			ID       string    `json:"id"`
			Unit     string    `json:"unit"`
			Samples  []float64 `json:"samples"`
			RateUnit string    `json:"rateUnit"`
			Rates    []float64 `json:"rates"`
		} `json:"result"`
	}
	if err := json.Unmarshal(out.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v\n%v", err, out.String())
	}
	if parsed.Spec.Name != "report-test" {
		t.Errorf("Expected \"report-test\", but got \"%v\"", parsed.Spec.Name)
	}
	if parsed.Spec.SampleCount != 5 {
		t.Errorf("Expected 5, but got %v", parsed.Spec.SampleCount)
	}
	if parsed.Spec.Throughput.Kind != "elements" ||
		parsed.Spec.Throughput.Count != 5000 {
		t.Errorf("unexpected throughput spec: %+v", parsed.Spec.Throughput)
	}
	if parsed.Result.ID != rep.ID {
		t.Errorf("Expected \"%v\", but got \"%v\"", rep.ID, parsed.Result.ID)
	}
	if parsed.Result.Unit != "ns" {
		t.Errorf("Expected \"ns\", but got \"%v\"", parsed.Result.Unit)
	}
	if len(parsed.Result.Samples) != 5 || len(parsed.Result.Rates) != 5 {
		t.Errorf("Expected 5 samples and 5 rates, but got %v and %v",
			len(parsed.Result.Samples), len(parsed.Result.Rates))
	}
	if !strings.HasSuffix(parsed.Result.RateUnit, "elem/s") {
		t.Errorf("Expected an element unit, but got \"%v\"",
			parsed.Result.RateUnit)
	}
}

func TestReportUnknownFormat(t *testing.T) {
	rep := testReport(t, nil)
	if err := rep.Print(new(bytes.Buffer), "yaml", false); err == nil {
		t.Error("unknown format specs should be rejected")
	}
}

func TestFormatSpecParsing(t *testing.T) {
	expectations := []struct {
		in  string
		out format
	}{
		{"plain-text", knownFormat("plain-text")},
		{"pt", knownFormat("plain-text")},
		{"json", knownFormat("json")},
		{"j", knownFormat("json")},
		{"path:/some/file.tmpl", userDefinedTemplate("/some/file.tmpl")},
		{"unknown-format", nil},
	}
	for _, e := range expectations {
		actual := formatFromString(e.in)
		if actual != e.out {
			t.Errorf("Expected %v, but got %v", e.out, actual)
		}
	}
}
