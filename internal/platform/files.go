package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
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
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Output container extension
const (
	OutputExtensionMP4 = ".mp4"
)

// supportedImageExtensions lists the raster formats accepted by dialogs,
// drops and folder expansion.
var supportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// SupportedImageExtensions returns the accepted image file extensions
func SupportedImageExtensions() []string {
	out := make([]string, len(supportedImageExtensions))
	copy(out, supportedImageExtensions)
	return out
}

// IsImageFile reports whether the path has a supported image extension
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range supportedImageExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// natural sort (numbers in filenames)
var reNum = regexp.MustCompile(`\d+`)

// NaturalLess compares two file names treating digit runs as numbers, so
// img2.png sorts before img10.png.
func NaturalLess(a, b string) bool {
	aa := reNum.FindAllStringIndex(a, -1)
	bb := reNum.FindAllStringIndex(b, -1)
	i, j := 0, 0
	pa, pb := 0, 0
	for i < len(aa) && j < len(bb) {
		// compare non-number prefix
		if a[pa:aa[i][0]] != b[pb:bb[j][0]] {
			return a[pa:aa[i][0]] < b[pb:bb[j][0]]
		}
		// compare numbers
		na, _ := strconv.Atoi(a[aa[i][0]:aa[i][1]])
		nb, _ := strconv.Atoi(b[bb[j][0]:bb[j][1]])
		if na != nb {
			return na < nb
		}
		pa = aa[i][1]
		pb = bb[j][1]
		i++
		j++
	}
	return a < b
}

// ListImagesInDir returns the supported image files directly inside dir
// (non-recursive), sorted by natural file name order.
func ListImagesInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsImageFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	sort.Slice(paths, func(i, j int) bool {
		return NaturalLess(filepath.Base(paths[i]), filepath.Base(paths[j]))
	})
	return paths, nil
}

// EnsureMP4Ext appends .mp4 to a save-dialog result that lacks it
func EnsureMP4Ext(path string) string {
	if strings.EqualFold(filepath.Ext(path), OutputExtensionMP4) {
		return path
	}
	return path + OutputExtensionMP4
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
