package x11

import "github.com/go-theft-auto/window"

var logger = window.Logger("x11")
