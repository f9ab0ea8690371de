package platform

// Package platform contains OS integration: the single overwritten map image
// file, directory helpers, and opening or revealing files with the desktop's
// default applications.
