// SPDX-License-Identifier: MPL-2.0

package logger

// PackageInfo identifies the product in the banner.
type PackageInfo struct {
	Name      string
	Version   string
	Copyright string
}

// Banner prints the product name and version, the copyright line and a blank
// line. It does nothing when the banner is disabled.
func (l *Logger) Banner() *Logger {
	if !l.bannerEnabled {
		return l
	}

	name := l.theme.Product.Render(l.pkg.Name)
	if l.pkg.Copyright == "" {
		return l.Log("%s, version %s\n", name, l.pkg.Version)
	}
	return l.Log("%s, version %s\n%s\n", name, l.pkg.Version, l.pkg.Copyright)
}

// SetBannerEnabled turns the banner on or off.
func (l *Logger) SetBannerEnabled(enabled bool) { l.bannerEnabled = enabled }

// BannerEnabled reports whether Banner prints anything.
func (l *Logger) BannerEnabled() bool { return l.bannerEnabled }
