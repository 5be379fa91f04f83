//go:build !linux && !darwin

package converter

func webcamInputArgs() []string {
	return []string{"-f", "dshow", "-i", "video=Integrated Camera"}
}
