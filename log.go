package vector

import "go.uber.org/zap"

// WithLogger attaches l to v and returns v. Buffer reallocations are logged
// at debug level. A nil logger disables logging.
func (v *Vector[T]) WithLogger(l *zap.Logger) *Vector[T] {
	if l == nil {
		l = zap.NewNop()
	}
	v.logger = l
	return v
}

func (v *Vector[T]) logRealloc(oldCap int) {
	if v.logger == nil {
		return
	}
	v.logger.Debug("vector buffer reallocated",
		zap.Int("old_capacity", oldCap),
		zap.Int("new_capacity", v.capacity),
		zap.Int("size", v.size),
		zap.Int("reallocs", v.reallocs))
}
