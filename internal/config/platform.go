package config

import "runtime"

func defaultPlatform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
