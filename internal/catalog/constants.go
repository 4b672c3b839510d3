package catalog

// LogMsgCatalogLoaded is logged after a catalog file is accepted
const LogMsgCatalogLoaded = "Weapon catalog loaded"
