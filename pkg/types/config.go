package types

import "errors"

// Config holds storage and server parameters for Store.Attach and the
// serve command.
type Config struct {
	DataDir    string `json:"data_dir" yaml:"data_dir"`
	UploadDir  string `json:"upload_dir" yaml:"upload_dir"`
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
	PageSize   int    `json:"page_size" yaml:"page_size"`
}

// Config validation errors.
var (
	ErrDataDirEmpty    = errors.New("data directory must not be empty")
	ErrPageSizeInvalid = errors.New("page size must be positive")
)

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.PageSize < 0 {
		return ErrPageSizeInvalid
	}
	return nil
}
