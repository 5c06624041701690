package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// DownloadsDirName is the folder under the home directory used by default
const DownloadsDirName = "Downloads"

// InvalidFolderChars are removed from folder names derived from metadata
const InvalidFolderChars = `<>:"/\|?*`

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// SanitizeFolderName strips characters that are invalid in file names on
// common filesystems and trims surrounding whitespace.
func SanitizeFolderName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(InvalidFolderChars, r) {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(cleaned)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if strings.TrimSpace(dirPath) == "" {
		return fmt.Errorf("directory path is empty")
	}

	info, err := os.Stat(dirPath)
	switch {
	case os.IsNotExist(err):
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("not a directory: %s", dirPath)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DownloadsDirName), nil
}

// OpenFolder opens dir in the system file manager
func OpenFolder(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open, then common file managers
func openFolderLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
