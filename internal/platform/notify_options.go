package platform

// AppName identifies the application to the notification center.
const AppName = "Sketchpad"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath points to an image shown beside the notification where supported.
	IconPath string
	// Timeout in milliseconds; zero selects the platform default of 5s.
	Timeout int32
}

func (o Options) timeout() int32 {
	if o.Timeout <= 0 {
		return 5000
	}
	return o.Timeout
}
