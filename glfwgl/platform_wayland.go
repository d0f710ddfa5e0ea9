//go:build wayland

package glfwgl

const compiledPlatform = "wayland"
