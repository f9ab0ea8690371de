package model

// Package model defines the view data shared across the app: the ViewState
// record, the discrete navigation actions the keyboard produces, and the axis
// and direction enums used by the pan operations. Values are plain structs so
// update functions can take and return them by value.
