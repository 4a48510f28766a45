package motion

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEase is used when neither the tween nor the engine names a curve.
const DefaultEase = "ease-out-cubic"

// builtinEases maps the curve names used across the site onto gween's easing functions.
// powerN follows the usual convention: power1 = quad, power2 = cubic, power3 = quart, power4 = quint.
var builtinEases = map[string]ease.TweenFunc{
	"none":           ease.Linear,
	"linear":         ease.Linear,
	"ease-out-cubic": ease.OutCubic,
	"ease-in-cubic":  ease.InCubic,

	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inOut": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inOut": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inOut": ease.InOutQuart,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inOut": ease.InOutQuint,

	"sine.in":    ease.InSine,
	"sine.out":   ease.OutSine,
	"sine.inOut": ease.InOutSine,
	"expo.in":    ease.InExpo,
	"expo.out":   ease.OutExpo,
	"expo.inOut": ease.InOutExpo,
	"circ.in":    ease.InCirc,
	"circ.out":   ease.OutCirc,
	"circ.inOut": ease.InOutCirc,

	"back.in":       ease.InBack,
	"back.out":      ease.OutBack,
	"back.inOut":    ease.InOutBack,
	"elastic.in":    ease.InElastic,
	"elastic.out":   ease.OutElastic,
	"elastic.inOut": ease.InOutElastic,
	"bounce.in":     ease.InBounce,
	"bounce.out":    ease.OutBounce,
	"bounce.inOut":  ease.InOutBounce,
}

// normalizeEase drops call-style parameters ("back.out(1.7)") and defaults a bare family
// name ("power2") to its out variant.
func normalizeEase(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	if name != "" && !strings.Contains(name, ".") && !strings.Contains(name, "-") {
		if _, ok := builtinEases[name+".out"]; ok {
			return name + ".out"
		}
	}
	return name
}

// easeProgress applies fn to a linear 0..1 progress value.
func easeProgress(fn ease.TweenFunc, p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return float64(fn(float32(p), 0, 1, 1))
}
