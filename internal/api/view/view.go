package view

import (
	"html/template"
	"io"
	"strconv"

	"github.com/Behyna/cc5mock/internal/model"
)

const layout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{block "content" .}}{{end}}
</body>
</html>
`

var (
	confirmationTmpl = template.Must(template.Must(template.New("confirmation").Parse(layout)).Parse(`
{{define "content"}}
<table>
<tr><th>oid</th><td id="oid">{{.Oid}}</td></tr>
<tr><th>okURL</th><td id="okURL">{{.OkURL}}</td></tr>
<tr><th>SystemTransId</th><td id="SystemTransId">{{.SystemTransID}}</td></tr>
</table>
<h2>Callback parameters</h2>
<table>
{{range .Params}}<tr><th>{{index . 0}}</th><td>{{index . 1}}</td></tr>
{{end}}</table>
<h2>Merchant callback</h2>
<p id="callback">{{.CallbackOutcome}}{{if .CallbackStatus}} (HTTP {{.CallbackStatus}}){{end}}{{if .CallbackError}}: {{.CallbackError}}{{end}}</p>
{{end}}`))

	noticeTmpl = template.Must(template.Must(template.New("notice").Parse(layout)).Parse(`
{{define "content"}}
<p id="code">{{.Code}}</p>
<p id="message">{{.Message}}</p>
{{end}}`))
)

type confirmationPage struct {
	Title           string
	Oid             string
	OkURL           string
	SystemTransID   string
	Params          [][2]string
	CallbackOutcome string
	CallbackStatus  string
	CallbackError   string
}

type noticePage struct {
	Title   string
	Code    string
	Message string
}

// RenderConfirmation writes the page returned to the ACS caller once the
// merchant callback has been attempted.
func RenderConfirmation(w io.Writer, result model.ThreeDSResult) error {
	page := confirmationPage{
		Title:           "3D Secure " + result.Params.Result,
		Oid:             result.Form.Oid,
		OkURL:           result.Form.OkURL,
		SystemTransID:   result.Params.SystemTransID,
		Params:          result.Params.Pairs(),
		CallbackOutcome: result.Callback.Outcome(),
	}
	if result.Callback.StatusCode != 0 {
		page.CallbackStatus = strconv.Itoa(result.Callback.StatusCode)
	}
	if result.Callback.Err != nil {
		page.CallbackError = result.Callback.Err.Error()
	}

	return confirmationTmpl.Execute(w, page)
}

func RenderNotice(w io.Writer, code, message string) error {
	return noticeTmpl.Execute(w, noticePage{
		Title:   "3D Secure request rejected",
		Code:    code,
		Message: message,
	})
}
