package billdoc

// Version is the current library version.
const Version = "0.3.0"
