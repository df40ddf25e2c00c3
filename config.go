package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"exodiag/canvas"
)

const configFile = ".exodiagrc"

type Config struct {
	OutputDirectory string
	FontDirs        []string
	RegularFont     string
	BoldFont        string
	CopyPath        bool
}

func defaultConfig() *Config {
	opts := canvas.DefaultFontOptions()
	return &Config{
		FontDirs:    append([]string(nil), opts.Dirs...),
		RegularFont: opts.Regular,
		BoldFont:    opts.Bold,
	}
}

// loadConfig reads ~/.exodiagrc. A missing file or home directory yields the
// defaults.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFrom(filepath.Join(homeDir, configFile), homeDir)
}

func loadConfigFrom(configPath, homeDir string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "outputdirectory", "output_dir", "outdir":
			config.OutputDirectory = expandPath(value, homeDir)
		case "fontdirs", "font_dirs":
			for _, dir := range strings.Split(value, ",") {
				if dir = strings.TrimSpace(dir); dir != "" {
					config.FontDirs = append(config.FontDirs, expandPath(dir, homeDir))
				}
			}
		case "regularfont", "regular_font":
			config.RegularFont = value
		case "boldfont", "bold_font":
			config.BoldFont = value
		case "copypath", "copy":
			config.CopyPath = strings.ToLower(value) == "true"
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetOutputPath places a bare filename in the output directory, creating it
// if needed. Paths with a directory part are used as given.
func (c *Config) GetOutputPath(filename string) (string, error) {
	if c.OutputDirectory == "" || filepath.Base(filename) != filename {
		return filename, nil
	}
	if err := os.MkdirAll(c.OutputDirectory, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(c.OutputDirectory, filename), nil
}

func (c *Config) FontOptions() canvas.FontOptions {
	return canvas.FontOptions{
		Dirs:    c.FontDirs,
		Regular: c.RegularFont,
		Bold:    c.BoldFont,
	}
}
