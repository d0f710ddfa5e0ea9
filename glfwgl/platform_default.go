//go:build !wayland

package glfwgl

import "runtime"

// compiledPlatform is the display server GLFW was built for. Without the
// wayland tag, Linux builds target X11.
var compiledPlatform = func() string {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "x11"
	case "darwin":
		return "cocoa"
	case "windows":
		return "win32"
	default:
		return runtime.GOOS
	}
}()
