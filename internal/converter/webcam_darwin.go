//go:build darwin

package converter

func webcamInputArgs() []string {
	return []string{"-f", "avfoundation", "-framerate", "30", "-i", "0"}
}
