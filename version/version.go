package version

// Version is the current release of the safetravelbuddy CLI & server
const Version = "0.1.0"
