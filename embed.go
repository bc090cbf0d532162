package site

import "embed"

// Assets contains the static files served under /public/ (the stylesheet).
//
//go:embed assets/*
var Assets embed.FS
