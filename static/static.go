package static

import "embed"

var (
	//go:embed css js images wallet-icons
	Files embed.FS
)
