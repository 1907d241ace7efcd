package request

import "regexp"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
