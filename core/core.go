package core

// Entity is a unique identifier for an entity in the animation world
type Entity uint64

// InvalidEntity is the zero entity, never allocated by a world
const InvalidEntity Entity = 0

// Valid reports whether the entity handle was allocated by a world
func (e Entity) Valid() bool {
	return e != InvalidEntity
}

// AssetID identifies a shared value inside a typed asset collection.
// IDs are opaque and only meaningful within the collection that issued them
type AssetID uint64

// InvalidAssetID is the zero asset id, never issued by a collection
const InvalidAssetID AssetID = 0

// Valid reports whether the id was issued by a collection
func (id AssetID) Valid() bool {
	return id != InvalidAssetID
}
