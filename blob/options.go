package blob

// Option configures a File during Open.
type Option func(*File) error

// WithEnvironment attaches the environment used to resolve imported-module
// references. Files opened without one return errs.ErrNoEnvironment from
// ImportedModule.
func WithEnvironment(env Environment) Option {
	return func(f *File) error {
		f.env = env
		return nil
	}
}
