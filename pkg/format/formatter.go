package format

import "go.uber.org/zap"

// Formatter applies a Style and logs each call at debug level. The package
// level functions stay free of logging; use a Formatter when tracing is needed.
type Formatter struct {
	style  Style
	logger *zap.Logger
}

// NewFormatter returns a Formatter for style. A nil logger disables tracing.
func NewFormatter(style Style, logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Formatter{style: style, logger: logger}
}

// Style returns the style the Formatter applies.
func (f *Formatter) Style() Style {
	return f.style
}

// Format renders a float64 amount.
func (f *Formatter) Format(amount float64) string {
	f.logger.Debug("formatting amount",
		zap.String("op", "format.Format"),
		zap.String("style", f.style.Name),
		zap.Float64("amount", amount),
	)
	result := f.style.Format(amount)
	f.logger.Debug("formatted amount",
		zap.String("op", "format.Format"),
		zap.String("style", f.style.Name),
		zap.String("result", result),
	)
	return result
}

// Format32 renders a float32 amount.
func (f *Formatter) Format32(amount float32) string {
	f.logger.Debug("formatting amount",
		zap.String("op", "format.Format32"),
		zap.String("style", f.style.Name),
		zap.Float32("amount", amount),
	)
	result := f.style.Format32(amount)
	f.logger.Debug("formatted amount",
		zap.String("op", "format.Format32"),
		zap.String("style", f.style.Name),
		zap.String("result", result),
	)
	return result
}
