package netitem

// Wire format
const (
	// SectionSeparator separates netID, stack and prefix in the scalar form.
	SectionSeparator = ","

	// ScalarSections is the number of sections in the scalar form.
	ScalarSections = 3

	// PayloadSections is the number of sections in a bare payload token.
	PayloadSections = 1

	scalarFormat = "%d,%d,%d"
)

// JSON property names, kept identical to the stored character data.
const (
	JSONKeyNetID   = "netID"
	JSONKeyPrefix  = "prefix"
	JSONKeyStack   = "stack"
	JSONKeyPayload = "payload"
)

// Region names
const (
	RegionInventory = "inventory"
	RegionArmor     = "armor"
	RegionDye       = "dye"
	RegionMiscEquip = "misc_equip"
	RegionMiscDye   = "misc_dye"
	RegionPiggy     = "piggy"
	RegionSafe      = "safe"
	RegionTrash     = "trash"
	RegionForge     = "forge"
)

// Log messages
const (
	LogMsgPayloadAbsent  = "Payload token decoded to no item, treating slot as empty"
	LogMsgLegacyFallback = "First section is not numeric, decoding as payload token"
)
