package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = ""      // check
	IconX        = ""      // x
	IconWarning  = ""      // warning
	IconVideo    = ""      // video camera
	IconMic      = ""      // microphone
	IconTrash    = ""      // trash
	IconConfig   = ""      // config
	IconDatabase = ""      // database
	IconShield   = ""      // shield
	IconDoctor   = "\uf0f1" // stethoscope
	IconPackage  = "\uf187" // package
)
