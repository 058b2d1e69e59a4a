// Package web embeds the hand-written frontend served under /static/.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
