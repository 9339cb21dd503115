//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
	DWMWA_BORDER_COLOR            = 34
	DWMWA_CAPTION_COLOR           = 35
)

func setWindowAttribute(hwnd unsafe.Pointer, attribute uintptr, value uint32) {
	procDwmSetWindowAttribute.Call(
		uintptr(hwnd),
		attribute,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
}

// applyDarkTitleBar switches the window frame to dark mode and paints the
// caption and border with color.
func applyDarkTitleBar(window *glfw.Window, color mgl32.Vec3) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}
	setWindowAttribute(unsafe.Pointer(hwnd), DWMWA_USE_IMMERSIVE_DARK_MODE, 1)

	ref := colorRef(color)
	setWindowAttribute(unsafe.Pointer(hwnd), DWMWA_BORDER_COLOR, ref)
	setWindowAttribute(unsafe.Pointer(hwnd), DWMWA_CAPTION_COLOR, ref)
}
