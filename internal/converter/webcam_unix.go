//go:build linux

package converter

func webcamInputArgs() []string {
	return []string{"-f", "v4l2", "-i", "/dev/video0"}
}
