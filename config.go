package bytestream

import (
	"bufio"
	"io"
	"os"
	"path"
	"regexp"
	"strconv"

	"github.com/performancecopilot/bytestream/bytebuffer"
	"github.com/pkg/errors"
)

// DefaultAllocSize is the size of the region allocated by a stream that is
// not given any storage
const DefaultAllocSize = 10000

// DefaultGuardLimit is the maximum size a stream may grow to unless configured
// otherwise
const DefaultGuardLimit = 2 * 1024 * 1024

// keys recognized in config files and the environment
const (
	GuardLimitKey  = "BYTESTREAM_GUARD_LIMIT"
	InitialSizeKey = "BYTESTREAM_INITIAL_SIZE"
	TrackGrowthKey = "BYTESTREAM_TRACK_GROWTH"
	confKey        = "BYTESTREAM_CONF"
)

// ConfPath stores path to the config file read at package initialization
var ConfPath string

// confValues stores the key-value pairs read from ConfPath
var confValues map[string]string

// pat stores a valid key-value pattern line
var pat = regexp.MustCompile("^([A-Z0-9_]+)=(.*)$")

// Config holds the construction parameters of a ByteStream
type Config struct {
	// Storage, when set, is adopted as the backing region without copying
	// and its contents are readable
	Storage []byte

	// Buffer, when set, is used as the backing store, taking precedence over
	// Storage and InitialSize
	Buffer bytebuffer.Buffer

	// InitialSize is the size allocated when neither Storage nor Buffer is set
	InitialSize int

	// GuardLimit is the maximum capacity the stream may ever grow to
	GuardLimit int

	// TrackGrowth enables recording of reallocations, see GrowthStats
	TrackGrowth bool
}

// initConfig reads the config file pointed to by BYTESTREAM_CONF, or
// /etc/bytestream.conf, a missing file is not an error
func initConfig() error {
	confPath, ok := os.LookupEnv(confKey)
	if !ok {
		confPath = path.Join("/", "etc", "bytestream.conf")
	}
	ConfPath = confPath

	f, err := os.Open(ConfPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	values, err := parseConfig(f)
	if err != nil {
		return err
	}

	// if we reach at this point, it means we have a valid config
	// that can be read, so we can make the map non-nil
	confValues = values
	return nil
}

func parseConfig(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if matches := pat.FindStringSubmatch(scanner.Text()); matches != nil {
			values[matches[1]] = matches[2]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read config")
	}

	return values, nil
}

// DefaultConfig returns the configuration used by New, built from the
// package defaults, then the config file read at initialization, then the
// environment
func DefaultConfig() Config {
	c := Config{
		InitialSize: DefaultAllocSize,
		GuardLimit:  DefaultGuardLimit,
	}

	if confValues != nil {
		if nc, err := c.apply(confValues); err == nil {
			c = nc
		} else if logging {
			logger.Error("ignoring invalid config file values")
		}
	}

	env := make(map[string]string)
	for _, k := range []string{GuardLimitKey, InitialSizeKey, TrackGrowthKey} {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}

	if nc, err := c.apply(env); err == nil {
		c = nc
	} else if logging {
		logger.Error("ignoring invalid environment values")
	}

	return c
}

// LoadConfig reads a KEY=VALUE file at loc on top of the package defaults
func LoadConfig(loc string) (Config, error) {
	f, err := os.Open(loc)
	if err != nil {
		return Config{}, errors.Wrap(err, "cannot open config")
	}
	defer f.Close()

	values, err := parseConfig(f)
	if err != nil {
		return Config{}, err
	}

	return Config{
		InitialSize: DefaultAllocSize,
		GuardLimit:  DefaultGuardLimit,
	}.apply(values)
}

func (c Config) apply(values map[string]string) (Config, error) {
	if v, ok := values[GuardLimitKey]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c, errors.Wrapf(ErrInvalidArgument, "%s=%q", GuardLimitKey, v)
		}
		c.GuardLimit = n
	}

	if v, ok := values[InitialSizeKey]; ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c, errors.Wrapf(ErrInvalidArgument, "%s=%q", InitialSizeKey, v)
		}
		c.InitialSize = n
	}

	if v, ok := values[TrackGrowthKey]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidArgument, "%s=%q", TrackGrowthKey, v)
		}
		c.TrackGrowth = b
	}

	return c, nil
}
