package hydrogen

// Version is the release version of the hydrogen module.
const Version = "0.1.0"
