package env

import (
	"os"
)

// PodName is set by the deployment, e.g. launchpad-api-6868d88fbd-bz8zv.
// It falls back to the hostname outside kubernetes.
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	name, _ := os.Hostname()
	return name
}
