package decibench

import (
	"os"
	"strings"
	"text/template"

	uuid "github.com/satori/go.uuid"
)

var (
	templates = map[string][]byte{
		"plain-text": []byte(plainTextTemplate),
		"json":       []byte(jsonTemplate),
	}
)

type format interface{}
type knownFormat string

func (kf knownFormat) template() []byte {
	return templates[string(kf)]
}

type filePath string
type userDefinedTemplate filePath

func formatFromString(formatSpec string) format {
	const prefix = "path:"
	if strings.HasPrefix(formatSpec, prefix) {
		return userDefinedTemplate(formatSpec[len(prefix):])
	}
	switch formatSpec {
	case "pt", "plain-text":
		return knownFormat("plain-text")
	case "j", "json":
		return knownFormat("json")
	}
	// nil represents unknown format
	return nil
}

func compileTemplate(f format, withLatencies bool) (*template.Template, error) {
	var (
		templateBytes []byte
		err           error
	)
	switch t := f.(type) {
	case knownFormat:
		templateBytes = t.template()
	case userDefinedTemplate:
		templateBytes, err = os.ReadFile(string(t))
		if err != nil {
			return nil, err
		}
	default:
		panic("format can't be nil at this point, this is a bug")
	}
	return template.New("report-template").
		Funcs(template.FuncMap{
			"WithLatencies": func() bool {
				return withLatencies
			},
			"FormatDecimal": formatDecimal,
			"FormatTimeUs":  formatTimeUs,
			"FormatTimeNs": func(ns float64) string {
				return formatTimeUs(ns / 1000)
			},
			"FormatTimeUsUint64": func(us uint64) string {
				return formatTimeUs(float64(us))
			},
			"FloatsToArray": func(ps ...float64) []float64 {
				return ps
			},
			"Multiply": func(num, coeff float64) float64 {
				return num * coeff
			},
			"StringToBytes": func(s string) []byte {
				return []byte(s)
			},
			"UUIDV1": uuid.NewV1,
			"UUIDV2": uuid.NewV2,
			"UUIDV3": uuid.NewV3,
			"UUIDV4": uuid.NewV4,
			"UUIDV5": uuid.NewV5,
		}).Parse(string(templateBytes))
}

const (
	plainTextTemplate = `
{{- with .Spec -}}
{{ printf "%v: %v samples" .Name .SampleCount }}
{{- if .IsPaced }}{{ printf ", paced at %v iterations/s" .RateValue }}{{ end }}
{{- end }}
{{ printf "%10v %10v %10v %10v" "Statistics" "Avg" "Stdev" "Max" }}
{{- with .Result }}
{{ with .SampleStats (FloatsToArray 0.5 0.75 0.9 0.95 0.99) }}
	{{- printf "  %-10v %10v %10v %10v" "Time" (FormatTimeNs .Mean) (FormatTimeNs .Stddev) (FormatTimeNs .Max) -}}
{{ else }}
	{{- print "  There wasn't enough data to compute statistics for samples." }}
{{ end }}
{{- with .RateStats }}
{{ printf "  %-10v %10.2f %10.2f %10.2f %v" "Rate" .Mean .Stddev .Max $.Result.RateUnit }}
{{- end }}
{{ with .LatencyStats (FloatsToArray 0.5 0.75 0.9 0.95 0.99) }}
	{{- printf "  %-10v %10v %10v %10v" "Latency" (FormatTimeUs .Mean) (FormatTimeUs .Stddev) (FormatTimeUs .Max) }}
	{{- if WithLatencies }}
  		{{- "\n  Latency Distribution" }}
		{{- range $pc, $lat := .Percentiles }}
			{{- printf "\n     %2.0f%% %10s" (Multiply $pc 100) (FormatTimeUsUint64 $lat) -}}
		{{ end -}}
	{{ end }}
{{ else }}
	{{- print "  There wasn't enough data to compute statistics for latencies." }}
{{ end -}}
{{ printf "  %v iterations in %v" .Iterations .TimeTaken }}
{{- end }}
{{- if .Spec.HasThroughput }}
{{- if eq .Spec.ThroughputKind "bytes" }}
{{ printf "  %-10v %v" "Processed:" (FormatDecimal .TotalUnits) }}
{{- else }}
{{ printf "  %-10v %.0f elements" "Processed:" .TotalUnits }}
{{- end }}
{{- end }}
`
	jsonTemplate = `{"spec":{
{{- with .Spec -}}
"name":{{ .Name | printf "%q" }}

,"warmupSeconds":{{ .WarmupTime.Seconds }}
{{- "" -}}
,"sampleCount":{{ .SampleCount }}
{{- "" -}}
,"sampleTimeSeconds":{{ .SampleTime.Seconds }}

{{- if .IsPaced -}}
,"rate":{{ .RateValue }}
{{- end -}}

{{- if .HasThroughput -}}
,"throughput":{"kind":{{ .ThroughputKind | printf "%q" }},"count":{{ .ThroughputCount }}}
{{- end -}}
{{- end -}}
},

{{- with .Result -}}
"result":{"id":{{ .ID | printf "%q" -}}
,"timeTakenSeconds":{{ .TimeTaken.Seconds -}}
,"iterations":{{ .Iterations -}}

,"unit":{{ .MachineUnit | printf "%q" -}}
,"samples":[
{{- range $index, $sample := .MachineSamples -}}
{{- if ne $index 0 -}},{{- end -}}
{{- printf "%f" $sample -}}
{{- end -}}
]

{{- if .Rates -}}
,"rateUnit":{{ .RateUnit | printf "%q" -}}
,"rates":[
{{- range $index, $rate := .Rates -}}
{{- if ne $index 0 -}},{{- end -}}
{{- printf "%f" $rate -}}
{{- end -}}
]
{{- end -}}

{{- with .LatencyStats (FloatsToArray 0.5 0.75 0.9 0.95 0.99) -}}
,"latency":{"mean":{{ .Mean -}}
,"stddev":{{ .Stddev -}}
,"max":{{ .Max -}}

{{- if WithLatencies -}}
,"percentiles":{
{{- range $pc, $lat := .Percentiles }}
{{- if ne $pc 0.5 -}},{{- end -}}
{{- printf "\"%2.0f\":%d" (Multiply $pc 100) $lat -}}
{{- end -}}
}
{{- end -}}
}
{{- end -}}
}}
{{- end -}}`
)
