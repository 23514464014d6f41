package platform

// Package platform holds OS-specific helpers: locating the user's download
// directory, creating directories, and revealing or opening saved files with
// the system file manager or default application.
