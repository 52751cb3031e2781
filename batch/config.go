package batch

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AnyUserName/dupimg/imghash"
	"github.com/AnyUserName/dupimg/sampler"
	"github.com/sirupsen/logrus"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir string
	Profile  Profile
	Workers  int             // <= 0 means runtime.NumCPU()
	Sampler  imghash.Sampler // nil means sampler.Default()
	Logger   logrus.FieldLogger
}

// LoadConfig builds a Config for inputDir from the environment:
//
//	DUPIMG_PROFILE     profile name (default "full")
//	DUPIMG_ALGORITHMS  comma separated algorithms, overrides the profile set
//	DUPIMG_WORKERS     parallel workers (default NumCPU)
//	DUPIMG_SAMPLER     "imaging" or "nfnt"
//	DUPIMG_LOG_LEVEL   logrus level (default "info")
func LoadConfig(inputDir string) (Config, error) {
	cfg := Config{
		InputDir: inputDir,
		Profile:  GetProfile(getEnv("DUPIMG_PROFILE", DefaultProfile)),
		Workers:  getEnvInt("DUPIMG_WORKERS", 0),
	}

	if names := getEnvList("DUPIMG_ALGORITHMS", nil); len(names) > 0 {
		algs := make([]imghash.Algorithm, 0, len(names))
		for _, n := range names {
			a, err := imghash.ParseAlgorithm(n)
			if err != nil {
				return cfg, fmt.Errorf("DUPIMG_ALGORITHMS: %w", err)
			}
			algs = append(algs, a)
		}
		cfg.Profile.Algorithms = algs
	}

	s, err := sampler.ByName(getEnv("DUPIMG_SAMPLER", "imaging"))
	if err != nil {
		return cfg, fmt.Errorf("DUPIMG_SAMPLER: %w", err)
	}
	cfg.Sampler = s

	level, err := logrus.ParseLevel(getEnv("DUPIMG_LOG_LEVEL", "info"))
	if err != nil {
		return cfg, fmt.Errorf("DUPIMG_LOG_LEVEL: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	cfg.Logger = logger

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				result = append(result, t)
			}
		}
		return result
	}
	return def
}
