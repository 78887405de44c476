package service

import (
	"bytes"
	"html/template"
)

// result page kinds
const (
	pageConnected  = "connected"
	pageFailed     = "failed"
	pageEmptySSID  = "empty_ssid"
	pageLongSSID   = "long_ssid"
	pageMissing    = "missing"
	pageUnparsable = "unparsable"
	pageNotFound   = "not_found"
	pageRoot       = "root"
)

var pages = template.Must(template.New("portal").Parse(`
{{define "head"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<link rel="icon" href="data:,">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>WiFi Manager</title>
</head>
<body>
{{end}}
{{define "foot"}}
</body>
</html>
{{end}}
{{define "root"}}{{template "head"}}<h1>{{.APName}}</h1>
<form action="/configure" method="post">
{{range .Networks}}<p><input type="radio" name="ssid" value="{{.Value}}" id="{{.ID}}"><label for="{{.ID}}">&nbsp;{{.Label}}</label></p>
{{else}}<p>No networks found.</p>
{{end}}<p><label for="password">Password:&nbsp;</label><input type="password" id="password" name="password"></p>
<p><input type="submit" value="Connect"></p>
</form>{{template "foot"}}{{end}}
{{define "connected"}}{{template "head"}}<p>Successfully connected to</p>
<h1>{{.Network}}</h1>
<p>IP address: {{.IP}}</p>{{template "foot"}}{{end}}
{{define "failed"}}{{template "head"}}<p>Could not connect to</p>
<h1>{{.Network}}</h1>
<p>Go back and try again!</p>{{template "foot"}}{{end}}
{{define "empty_ssid"}}{{template "head"}}<p>SSID must be provided!</p>
<p>Go back and try again!</p>{{template "foot"}}{{end}}
{{define "long_ssid"}}{{template "head"}}<p>SSID must be at most {{.}} bytes!</p>
<p>Go back and try again!</p>{{template "foot"}}{{end}}
{{define "missing"}}{{template "head"}}<p>Parameters not found!</p>{{template "foot"}}{{end}}
{{define "unparsable"}}{{template "head"}}<p>Request could not be understood!</p>{{template "foot"}}{{end}}
{{define "not_found"}}{{template "head"}}<p>Path not found!</p>{{template "foot"}}{{end}}
`))

type option struct {
	ID    string
	Value string
	Label string
}

type rootData struct {
	APName   string
	Networks []option
}

type resultData struct {
	Network string
	IP      string
}

func render(name string, data any) []byte {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		// templates are static; a failure here means a bad data type
		panic(err)
	}
	return buf.Bytes()
}
