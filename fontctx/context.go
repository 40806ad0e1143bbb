// Package fontctx holds the process-wide text rendering context shared
// by all overlay element types: language and base-direction metadata
// plus the current font description. The context is guarded by a lock,
// and With is the only way to touch it.
package fontctx

import (
	"context"

	"github.com/xaionaro-go/xsync"
	"golang.org/x/image/font"
)

// Context is the shared text rendering context.
//
// Do not retain a *Context outside a With callback: the pointer is only
// valid while the context lock is held.
type Context struct {
	language    string
	direction   Direction
	description FontDescription
	faces       map[FontDescription]font.Face
}

func NewContext() *Context {
	return &Context{
		language: "C",
		faces:    map[FontDescription]font.Face{},
	}
}

var (
	locker xsync.Mutex
	global = NewContext()
)

// With runs fn with the shared context locked. The lock is released on
// every exit path, including a panic inside fn.
func With(ctx context.Context, fn func(fctx *Context)) {
	locker.Do(ctx, func() {
		fn(global)
	})
}

func (fctx *Context) Language() string {
	return fctx.language
}

func (fctx *Context) SetLanguage(language string) {
	fctx.language = language
}

func (fctx *Context) Direction() Direction {
	return fctx.direction
}

func (fctx *Context) SetDirection(direction Direction) {
	fctx.direction = direction
}

func (fctx *Context) FontDescription() FontDescription {
	return fctx.description
}

func (fctx *Context) SetFontDescription(description FontDescription) {
	fctx.description = description
}
