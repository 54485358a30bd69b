package ptr

// String returns a pointer to value
func String(value string) *string {
	return &value
}

// Int64 returns a pointer to value
func Int64(value int64) *int64 {
	return &value
}

