// Package config resolves runtime settings from defaults, .env, environment and flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/berry-snake/audio"
	"github.com/lixenwraith/berry-snake/core"
	"github.com/lixenwraith/berry-snake/highscore"
)

// EnvPrefix is prepended to every environment key
const EnvPrefix = "BERRY_SNAKE_"

// Config holds the resolved settings for one run
type Config struct {
	Difficulty core.Difficulty // Starting tier
	FruitRetry bool            // Re-draw fruit off the snake after eating
	Seed       uint64          // Fruit RNG seed, 0 = time-based

	Store           string // file, redis, mongo, memory
	ScoresPath      string // file backend path
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RedisKey        string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	Audio *audio.AudioConfig

	Debug   bool   // Log to LogPath
	LogPath string // Debug log file
	EnvFile string // Optional dotenv file
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Difficulty:      core.DifficultyHard,
		Store:           highscore.BackendFile,
		ScoresPath:      defaultScoresPath(),
		RedisAddr:       "localhost:6379",
		RedisKey:        highscore.DefaultRedisKey,
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   highscore.DefaultMongoDatabase,
		MongoCollection: highscore.DefaultMongoCollection,
		Audio:           audio.DefaultAudioConfig(),
		LogPath:         filepath.Join("logs", "berry-snake.log"),
		EnvFile:         ".env",
	}
}

// defaultScoresPath places the table under the user config dir, falling back to the working dir
func defaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "highscores.json"
	}
	return filepath.Join(dir, "berry-snake", "highscores.json")
}

// Load resolves settings in order: defaults, dotenv file, environment, flags
// Later sources win; dotenv never overrides variables already set in the environment
func Load(args []string) (Config, error) {
	cfg := Default()

	flags, fv := newFlagSet(&cfg)
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["env"] {
		cfg.EnvFile = fv.envFile
	}
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return cfg, err
	}

	var errs *multierror.Error
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		errs = multierror.Append(errs, err)
	}
	fv.apply(&cfg, set)

	if err := cfg.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return cfg, errs.ErrorOrNil()
}

// loadEnvFile loads path into the process environment; a missing file is not an error
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays BERRY_SNAKE_* variables onto cfg
// Malformed numeric or boolean values are reported and leave the field unchanged
func applyEnv(cfg *Config, getenv func(string) string) error {
	var errs *multierror.Error
	get := func(key string) (string, bool) {
		v := getenv(EnvPrefix + key)
		return v, v != ""
	}

	if v, ok := get("DIFFICULTY"); ok {
		cfg.Difficulty = core.ParseDifficulty(v)
	}
	if v, ok := get("STORE"); ok {
		cfg.Store = strings.ToLower(v)
	}
	if v, ok := get("SCORES_PATH"); ok {
		cfg.ScoresPath = v
	}
	if v, ok := get("REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}
	if v, ok := get("REDIS_PASSWORD"); ok {
		cfg.RedisPassword = v
	}
	if v, ok := get("REDIS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = n
		} else {
			errs = multierror.Append(errs, fmt.Errorf("%sREDIS_DB: %w", EnvPrefix, err))
		}
	}
	if v, ok := get("REDIS_KEY"); ok {
		cfg.RedisKey = v
	}
	if v, ok := get("MONGO_URI"); ok {
		cfg.MongoURI = v
	}
	if v, ok := get("MONGO_DB"); ok {
		cfg.MongoDatabase = v
	}
	if v, ok := get("MONGO_COLLECTION"); ok {
		cfg.MongoCollection = v
	}
	if v, ok := get("FRUIT_RETRY"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.FruitRetry = b
		} else {
			errs = multierror.Append(errs, fmt.Errorf("%sFRUIT_RETRY: %w", EnvPrefix, err))
		}
	}
	if v, ok := get("SEED"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			errs = multierror.Append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		}
	}
	if v, ok := get("DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		} else {
			errs = multierror.Append(errs, fmt.Errorf("%sDEBUG: %w", EnvPrefix, err))
		}
	}
	if v, ok := get("LOG_PATH"); ok {
		cfg.LogPath = v
	}

	cfg.Audio = audio.LoadAudioConfig(getenv)

	return errs.ErrorOrNil()
}

// Validate rejects settings Open could not satisfy
func (c Config) Validate() error {
	switch c.Store {
	case highscore.BackendFile:
		if c.ScoresPath == "" {
			return errors.New("file store needs a scores path")
		}
	case highscore.BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("redis store needs an address")
		}
	case highscore.BackendMongo:
		if c.MongoURI == "" {
			return errors.New("mongo store needs a URI")
		}
	case highscore.BackendMemory:
	default:
		return fmt.Errorf("%w: %q", highscore.ErrUnknownBackend, c.Store)
	}
	return nil
}

// StoreOptions maps the store settings onto highscore.Open options
func (c Config) StoreOptions() highscore.Options {
	return highscore.Options{
		Backend:         c.Store,
		FilePath:        c.ScoresPath,
		RedisAddr:       c.RedisAddr,
		RedisPassword:   c.RedisPassword,
		RedisDB:         c.RedisDB,
		RedisKey:        c.RedisKey,
		MongoURI:        c.MongoURI,
		MongoDatabase:   c.MongoDatabase,
		MongoCollection: c.MongoCollection,
	}
}

// flagValues holds raw flag results until we know which flags were given
type flagValues struct {
	difficulty      string
	store           string
	scoresPath      string
	redisAddr       string
	redisPassword   string
	redisDB         int
	redisKey        string
	mongoURI        string
	mongoDatabase   string
	mongoCollection string
	fruitRetry      bool
	seed            uint64
	mute            bool
	volume          int
	debug           bool
	logPath         string
	envFile         string
}

func newFlagSet(def *Config) (*flag.FlagSet, *flagValues) {
	fv := &flagValues{}
	flags := flag.NewFlagSet("berry-snake", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.StringVar(&fv.difficulty, "difficulty", def.Difficulty.Key(), "starting difficulty: easy, medium, hard")
	flags.StringVar(&fv.store, "store", def.Store, "high-score store: file, redis, mongo, memory")
	flags.StringVar(&fv.scoresPath, "scores", def.ScoresPath, "high-score file for the file store")
	flags.StringVar(&fv.redisAddr, "redis-addr", def.RedisAddr, "redis address")
	flags.StringVar(&fv.redisPassword, "redis-password", "", "redis password")
	flags.IntVar(&fv.redisDB, "redis-db", def.RedisDB, "redis database number")
	flags.StringVar(&fv.redisKey, "redis-key", def.RedisKey, "redis hash key")
	flags.StringVar(&fv.mongoURI, "mongo-uri", def.MongoURI, "mongodb connection URI")
	flags.StringVar(&fv.mongoDatabase, "mongo-db", def.MongoDatabase, "mongodb database")
	flags.StringVar(&fv.mongoCollection, "mongo-collection", def.MongoCollection, "mongodb collection")
	flags.BoolVar(&fv.fruitRetry, "fruit-retry", def.FruitRetry, "never spawn fruit on the snake after eating")
	flags.Uint64Var(&fv.seed, "seed", def.Seed, "fruit RNG seed, 0 for time-based")
	flags.BoolVar(&fv.mute, "mute", false, "disable sound")
	flags.IntVar(&fv.volume, "volume", int(def.Audio.MasterVolume*100), "master volume 0-100")
	flags.BoolVar(&fv.debug, "debug", def.Debug, "write debug log")
	flags.StringVar(&fv.logPath, "log", def.LogPath, "debug log path")
	flags.StringVar(&fv.envFile, "env", def.EnvFile, "dotenv file")

	return flags, fv
}

// apply copies explicitly given flags onto cfg
func (fv *flagValues) apply(cfg *Config, set map[string]bool) {
	if set["difficulty"] {
		cfg.Difficulty = core.ParseDifficulty(fv.difficulty)
	}
	if set["store"] {
		cfg.Store = strings.ToLower(fv.store)
	}
	if set["scores"] {
		cfg.ScoresPath = fv.scoresPath
	}
	if set["redis-addr"] {
		cfg.RedisAddr = fv.redisAddr
	}
	if set["redis-password"] {
		cfg.RedisPassword = fv.redisPassword
	}
	if set["redis-db"] {
		cfg.RedisDB = fv.redisDB
	}
	if set["redis-key"] {
		cfg.RedisKey = fv.redisKey
	}
	if set["mongo-uri"] {
		cfg.MongoURI = fv.mongoURI
	}
	if set["mongo-db"] {
		cfg.MongoDatabase = fv.mongoDatabase
	}
	if set["mongo-collection"] {
		cfg.MongoCollection = fv.mongoCollection
	}
	if set["fruit-retry"] {
		cfg.FruitRetry = fv.fruitRetry
	}
	if set["seed"] {
		cfg.Seed = fv.seed
	}
	if set["mute"] && fv.mute {
		cfg.Audio.Enabled = false
	}
	if set["volume"] {
		cfg.Audio.SetMasterVolume(fv.volume)
	}
	if set["debug"] {
		cfg.Debug = fv.debug
	}
	if set["log"] {
		cfg.LogPath = fv.logPath
	}
}

// Usage writes flag help to w
func Usage(w io.Writer) {
	cfg := Default()
	flags, _ := newFlagSet(&cfg)
	flags.SetOutput(w)
	fmt.Fprintln(w, "Usage: berry-snake [flags]")
	flags.PrintDefaults()
}
