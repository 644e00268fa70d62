package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidator_ValidateUser(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		seq     int64
		wantErr bool
	}{
		{name: "configured user", seq: 1, wantErr: false},
		{name: "missing user", seq: 0, wantErr: true},
		{name: "negative user", seq: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUser(tt.seq)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUser() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ValidateDate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid date", date: "2024-01-05", wantErr: false},
		{name: "leap day", date: "2024-02-29", wantErr: false},
		{name: "empty", date: "", wantErr: true},
		{name: "not a leap year", date: "2023-02-29", wantErr: true},
		{name: "wrong layout", date: "2024/01/05", wantErr: true},
		{name: "unpadded", date: "2024-1-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), "expected 2006-01-02") {
				t.Errorf("ValidateDate() error message = %v, want the expected layout", err.Error())
			}
		})
	}
}

func TestValidator_ValidateTab(t *testing.T) {
	v := NewValidator()

	for _, tab := range []string{"감정", "어휘력", "관심사", "대화 빈도"} {
		if err := v.ValidateTab(tab); err != nil {
			t.Errorf("ValidateTab(%q) error = %v", tab, err)
		}
	}
	if err := v.ValidateTab("날씨"); err == nil {
		t.Error("ValidateTab() accepted an unknown tab")
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v := NewValidator()

	// Create temp directory and file for testing
	tempDir, err := os.MkdirTemp("", "test-validate-file-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, "testfile.txt")
	if err := os.WriteFile(tempFile, []byte("test content"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid file",
			path:    tempFile,
			wantErr: false,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
			errMsg:  "file path cannot be empty",
		},
		{
			name:    "directory instead of file",
			path:    tempDir,
			wantErr: true,
			errMsg:  "path is a directory, not a file",
		},
		{
			name:    "non-existent file",
			path:    "/non/existent/file.txt",
			wantErr: true,
			errMsg:  "file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && tt.errMsg != "" && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateFile() error message = %v, want to contain %v", err.Error(), tt.errMsg)
				}
			}
		})
	}
}

func TestValidator_ResolvePath(t *testing.T) {
	v := NewValidator()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{
			name:    "empty path",
			path:    "",
			want:    "",
			wantErr: false,
		},
		{
			name:    "current directory",
			path:    ".",
			want:    cwd,
			wantErr: false,
		},
		{
			name:    "absolute path",
			path:    "/usr/local/bin",
			want:    "/usr/local/bin",
			wantErr: false,
		},
		{
			name:    "relative path",
			path:    "subdir",
			want:    filepath.Join(cwd, "subdir"),
			wantErr: false,
		},
		{
			name:    "relative path with parent",
			path:    "../test",
			want:    filepath.Join(filepath.Dir(cwd), "test"),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ResolvePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolvePath() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ResolvePath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidator_GetDefaultDatabasePath(t *testing.T) {
	v := NewValidator()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	expectedPath := filepath.Join(homeDir, ".story-memory", "stories.db")

	got, err := v.GetDefaultDatabasePath()
	if err != nil {
		t.Errorf("GetDefaultDatabasePath() error = %v", err)
		return
	}

	if got != expectedPath {
		t.Errorf("GetDefaultDatabasePath() = %v, want %v", got, expectedPath)
	}
}
