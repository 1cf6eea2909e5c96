package dataset

import (
	"go.uber.org/zap"
)

// Options controls where a dataset is read from.
type Options struct {
	Path      string
	Columns   Columns
	UseCache  bool
	CachePath string
	Logger    *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Load returns the dataset at o.Path, served from the sqlite cache when the
// cache was built from the same file. Cache problems are logged and the CSV
// is read instead; only a missing or malformed CSV is an error.
func Load(o Options) (*Store, error) {
	log := o.logger()

	fp, err := FingerprintOf(o.Path, o.Columns)
	if err != nil {
		return nil, loadErr(o.Path, err)
	}

	if !o.UseCache || o.CachePath == "" {
		return loadCSV(o, log)
	}

	cache, err := OpenCache(o.CachePath, log)
	if err != nil {
		log.Warn("cache unavailable, reading csv", zap.String("cache", o.CachePath), zap.Error(err))
		return loadCSV(o, log)
	}
	defer cache.Close()

	store, ok, err := cache.Lookup(fp)
	if err != nil {
		log.Warn("cache lookup failed", zap.Error(err))
	}
	if ok {
		log.Info("dataset loaded", zap.String("source", fp.Path), zap.Int("rows", store.Len()), zap.Bool("cache_hit", true))
		return store, nil
	}

	store, err = loadCSV(o, log)
	if err != nil {
		return nil, err
	}
	if err := cache.Save(fp, store.records); err != nil {
		log.Warn("cache save failed", zap.Error(err))
	}
	return store, nil
}

// Import rebuilds the cache at o.CachePath from the CSV at o.Path and
// returns the number of records written.
func Import(o Options) (int, error) {
	log := o.logger()

	fp, err := FingerprintOf(o.Path, o.Columns)
	if err != nil {
		return 0, loadErr(o.Path, err)
	}
	store, err := loadCSV(o, log)
	if err != nil {
		return 0, err
	}

	cache, err := OpenCache(o.CachePath, log)
	if err != nil {
		return 0, err
	}
	defer cache.Close()

	if err := cache.Save(fp, store.records); err != nil {
		return 0, err
	}
	log.Info("cache rebuilt", zap.String("cache", o.CachePath), zap.Int("rows", store.Len()))
	return store.Len(), nil
}

func loadCSV(o Options, log *zap.Logger) (*Store, error) {
	store, err := LoadCSV(o.Path, o.Columns)
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded", zap.String("source", o.Path), zap.Int("rows", store.Len()), zap.Bool("cache_hit", false))
	return store, nil
}
