package utils

import (
	"html/template"

	"github.com/Masterminds/sprig/v3"
)

// GetTemplateFuncs returns the sprig functions plus the page helpers
func GetTemplateFuncs() template.FuncMap {
	fm := sprig.FuncMap()
	fm["shortHex"] = FormatEthAddressShort
	return fm
}
