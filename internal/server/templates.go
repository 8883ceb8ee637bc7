package server

import (
	"html/template"
	"net/url"

	"github.com/dustin/go-humanize"
)

// pageTemplates builds the inline HTML pages without external assets.
func pageTemplates() *template.Template {
	pages := template.New("pages").Funcs(template.FuncMap{
		"q":     url.QueryEscape,
		"bytes": func(size int64) string { return humanize.Bytes(uint64(size)) }, //nolint:gosec // Sizes come from the API and are non-negative.
	})

	template.Must(pages.New("index").Parse(indexPageTpl))
	template.Must(pages.New("listing").Parse(listingPageTpl))

	return pages
}

const indexPageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>disk-bundler</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:800px;margin:0 auto;padding:1rem}
label{display:block;margin:0.5rem 0 0.25rem}
input[type=text],select{width:100%;padding:6px;border:1px solid #ccc;border-radius:6px}
button{margin-top:1rem;padding:8px 16px;border:0;border-radius:6px;background:#2b6cb0;color:#fff;cursor:pointer}
</style>
<h1>Browse a public folder</h1>
<form method="post" action="/">
  <label for="public_key">Public link or key</label>
  <input type="text" id="public_key" name="public_key" placeholder="https://disk.yandex.ru/d/..." required />
  <label for="media_type">Media type</label>
  <select id="media_type" name="media_type">
    <option value="">All</option>
    {{range .MediaTypes}}<option value="{{.}}">{{.}}</option>
    {{end}}
  </select>
  <button type="submit">Show contents</button>
</form>
</html>`

const listingPageTpl = `<!doctype html>
<html lang="en">
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>disk-bundler</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto;max-width:1100px;margin:0 auto;padding:1rem}
table{border-collapse:collapse;width:100%}
th,td{text-align:left;padding:6px;border-bottom:1px solid #eee}
.muted,small{color:#666}
button{margin-top:1rem;padding:8px 16px;border:0;border-radius:6px;background:#2b6cb0;color:#fff;cursor:pointer}
</style>
<header>
  <a href="/">⬅ New search</a>
  {{if .MediaType}}<small>(filter: {{.MediaType}})</small>{{end}}
</header>
{{if .Items}}
<form method="post" action="/download_multiple/{{q .PublicKey}}">
  <table>
    <tr><th></th><th>Name</th><th>Type</th><th>Size</th><th></th></tr>
    {{range .Items}}
    <tr>
      <td><input type="checkbox" name="files" value="{{.Path}}" /></td>
      <td>{{.Name}}</td>
      <td>{{.MediaType}}</td>
      <td>{{bytes .Size}}</td>
      <td><a href="/download/{{q $.PublicKey}}/{{.Path}}">download</a></td>
    </tr>
    {{end}}
  </table>
  <button type="submit">Download selected as ZIP</button>
</form>
{{else}}
<p class="muted">Nothing to show.</p>
{{end}}
</html>`
