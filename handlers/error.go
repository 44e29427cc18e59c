package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ethpandaops/getgas/templates"
	"github.com/ethpandaops/getgas/types/models"
	"github.com/ethpandaops/getgas/utils"
)

type staticFileServer struct {
	files    fs.FS
	handler  http.Handler
	notFound http.HandlerFunc
}

// StaticFiles serves files. Unknown paths and directories get the not found page.
func StaticFiles(files fs.FS, notFound http.HandlerFunc) http.Handler {
	return &staticFileServer{
		files:    files,
		handler:  http.FileServer(http.FS(files)),
		notFound: notFound,
	}
}

func (sfs *staticFileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(sfs.files, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		sfs.notFound(w, r)
	case errors.Is(err, fs.ErrPermission):
		http.Error(w, "403 Forbidden", http.StatusForbidden)
	case err != nil:
		logrus.WithError(err).WithField("file", name).Error("error reading static file")
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
	case info.IsDir():
		sfs.notFound(w, r)
	default:
		sfs.handler.ServeHTTP(w, r)
	}
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	templateFiles := append(layoutTemplateFiles, "_layout/404.html")
	notFoundTemplate := templates.GetTemplate(templateFiles...)
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	data := InitPageData(w, r, "", r.URL.Path, "Not Found", templateFiles)
	err := notFoundTemplate.ExecuteTemplate(w, "layout", data)
	if err != nil {
		logrus.Errorf("error executing not-found template for %v route: %v", r.URL.String(), err)
		http.Error(w, "Internal server error", http.StatusServiceUnavailable)
	}
}

func handlePageError(w http.ResponseWriter, r *http.Request, pageError error) {
	templateFiles := append(layoutTemplateFiles, "_layout/500.html")
	errorTemplate := templates.GetTemplate(templateFiles...)
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusInternalServerError)
	data := InitPageData(w, r, "", r.URL.Path, "Internal Error", templateFiles)
	data.Data = &models.ErrorPageData{
		CallTime: time.Now(),
		CallUrl:  r.URL.String(),
		ErrorMsg: pageError.Error(),
		Version:  utils.GetBuildVersion(),
	}
	err := errorTemplate.ExecuteTemplate(w, "layout", data)
	if err != nil {
		logrus.Errorf("error executing page error template for %v route: %v", r.URL.String(), err)
		http.Error(w, "Internal server error", http.StatusServiceUnavailable)
	}
}
