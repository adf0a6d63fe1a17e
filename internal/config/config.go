package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr string

	// ColorHueThreshold is the minimum circular hue distance (degrees)
	// between the two players' colors.
	ColorHueThreshold int
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:          getenvStr("HTTP_ADDR", ":3000"),
		ColorHueThreshold: getenvInt("COLOR_HUE_THRESHOLD", 25),
	}
}
