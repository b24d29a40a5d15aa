//go:build windows

package cli

import "golang.org/x/sys/windows"

// terminalSize returns the console window dimensions of fd in cells.
func terminalSize(fd int) (width, height int, err error) {
	h := windows.Handle(fd)
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return 0, 0, err
	}

	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height, nil
}
