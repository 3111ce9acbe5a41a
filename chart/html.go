package chart

import (
	"encoding/json"
	"html/template"
	"io"
)

var page = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
</head>
<body>
  <div id="vis"></div>
  <script type="text/javascript">
    vegaEmbed("#vis", {{.Spec}});
  </script>
</body>
</html>
`))

// WriteHTML writes a standalone page that renders s with vega-embed.
func WriteHTML(w io.Writer, s Spec) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return page.Execute(w, struct {
		Title string
		Spec  template.JS
	}{
		Title: s.Title,
		Spec:  template.JS(raw),
	})
}
