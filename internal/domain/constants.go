package domain

// Weapon catalog identifiers - stable code identifiers used in requests
const (
	WeaponPistol  = "pistol"
	WeaponRifle   = "rifle"
	WeaponShotgun = "shotgun"
	WeaponSniper  = "sniper"

	// StarterWeapon is granted to every new player and used when a shot names no weapon
	StarterWeapon = WeaponPistol
)

// Enemy type labels
const (
	EnemyZombie  = "zombie"
	EnemySoldier = "soldier"
	EnemyRobot   = "robot"
	EnemyAlien   = "alien"
)

// EnemyTypes lists the spawnable enemy labels in draw order
var EnemyTypes = []string{EnemyZombie, EnemySoldier, EnemyRobot, EnemyAlien}

// Inventory item discriminators accepted by use-item
const (
	ItemMedicalKit = "medical_kit"
	ItemGrenade    = "grenade"
	ItemAmmoBox    = "ammo_box"
)

// Player starting values
const (
	StartingLevel      = 1
	StartingExperience = 0
	MaxHealth          = 100
	StartingArmor      = 50
	PlayerNamePrefix   = "Player_"
	PlayerNameIDLength = 8
)

// Inventory starting counts
const (
	StartingMedicalKits = 3
	StartingAmmoBoxes   = 5
	StartingGrenades    = 2
)

// Shooting and item effect tuning
const (
	// HitThreshold is the accuracy score a shot must exceed to count as a hit
	HitThreshold = 30.0
	// AccuracyMax is the exclusive upper bound of the accuracy roll
	AccuracyMax = 100.0

	MedicalKitHeal    = 50
	GrenadeDamageMin  = 30
	GrenadeDamageMax  = 129
	GrenadeRadiusText = "Radio de explosión: 5 metros"
	AmmoBoxRestore    = 60
)

// Enemy spawn tuning
const (
	EnemyHealthMin   = 20
	EnemyHealthMax   = 99
	EnemyPositionMax = 100.0
)

// Service metadata reported by the health check
const (
	HealthStatusOK = "OK"
	ServiceVersion = "1.0.0"
)
