package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager places export files under one directory
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// GetOutputFilePath creates the base directory and returns the path for fileName in it
func (om *OutputManager) GetOutputFilePath(fileName string) (string, error) {
	if err := os.MkdirAll(om.BaseOutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// Clean the filename to remove any path separators
	cleanFileName := filepath.Base(fileName)
	if cleanFileName == "." || cleanFileName == string(filepath.Separator) {
		return "", fmt.Errorf("invalid output file name %q", fileName)
	}

	return filepath.Join(om.BaseOutputDir, cleanFileName), nil
}

// Create opens fileName for writing under the base directory
func (om *OutputManager) Create(fileName string) (*os.File, string, error) {
	path, err := om.GetOutputFilePath(fileName)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create output file: %w", err)
	}
	return f, path, nil
}

// GetFileType determines the file type based on extension
func GetFileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	default:
		return "unknown"
	}
}

// GetFileSize returns the size of a file in bytes
func GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
