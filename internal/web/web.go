// Package web хранит HTML-шаблоны и статические файлы сайта.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates разбирает все встроенные шаблоны. Имя шаблона совпадает с именем файла.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: разбор шаблонов: %w", err)
	}
	return tmpl, nil
}

// MustTemplates как Templates, но паникует при ошибке.
func MustTemplates() *template.Template {
	tmpl, err := Templates()
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Static возвращает файловую систему для /static: каталог dir, если он существует,
// иначе встроенные файлы.
func Static(dir string) http.FileSystem {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return http.Dir(dir)
		}
	}

	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
