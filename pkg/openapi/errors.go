package openapi

import "errors"

var ErrRender = errors.New("failed to render openapi document")
