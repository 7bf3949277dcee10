package netitem

// Slot counts for each region of a flattened player inventory.
// The order and sizes are a storage contract: changing either shifts every
// later region and silently moves stored items between regions.
const (
	// InventorySlots covers the main inventory, coins, ammo and the held item.
	InventorySlots = 59
	ArmorSlots     = 20
	DyeSlots       = 10
	MiscEquipSlots = 5
	MiscDyeSlots   = MiscEquipSlots
	PiggySlots     = 40
	SafeSlots      = PiggySlots
	TrashSlots     = 1
	ForgeSlots     = SafeSlots

	// MaxInventory is the total number of slots in a flattened inventory.
	MaxInventory = InventorySlots + ArmorSlots + DyeSlots + MiscEquipSlots + MiscDyeSlots +
		PiggySlots + SafeSlots + TrashSlots + ForgeSlots
)

// Region is a named half-open range [Start, End) of slot indexes.
type Region struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Len returns the number of slots in the region.
func (r Region) Len() int {
	return r.End - r.Start
}

// Contains reports whether slot falls inside the region.
func (r Region) Contains(slot int) bool {
	return slot >= r.Start && slot < r.End
}

// Region bounds, each starting where the previous one ends.
var (
	InventoryIndex = Region{Name: RegionInventory, Start: 0, End: InventorySlots}
	ArmorIndex     = next(InventoryIndex, RegionArmor, ArmorSlots)
	DyeIndex       = next(ArmorIndex, RegionDye, DyeSlots)
	MiscEquipIndex = next(DyeIndex, RegionMiscEquip, MiscEquipSlots)
	MiscDyeIndex   = next(MiscEquipIndex, RegionMiscDye, MiscDyeSlots)
	PiggyIndex     = next(MiscDyeIndex, RegionPiggy, PiggySlots)
	SafeIndex      = next(PiggyIndex, RegionSafe, SafeSlots)
	TrashIndex     = next(SafeIndex, RegionTrash, TrashSlots)
	ForgeIndex     = next(TrashIndex, RegionForge, ForgeSlots)
)

var regions = [...]Region{
	InventoryIndex,
	ArmorIndex,
	DyeIndex,
	MiscEquipIndex,
	MiscDyeIndex,
	PiggyIndex,
	SafeIndex,
	TrashIndex,
	ForgeIndex,
}

func next(prev Region, name string, size int) Region {
	return Region{Name: name, Start: prev.End, End: prev.End + size}
}

// Regions returns the layout in storage order. The returned slice is a copy.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions[:])
	return out
}

// RegionOf returns the region that holds slot.
func RegionOf(slot int) (Region, bool) {
	for _, r := range regions {
		if r.Contains(slot) {
			return r, true
		}
	}
	return Region{}, false
}

// RegionByName looks a region up by its name (e.g. "armor", "forge").
func RegionByName(name string) (Region, bool) {
	for _, r := range regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}
