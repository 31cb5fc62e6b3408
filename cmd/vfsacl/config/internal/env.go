package internal

// EnvPrefix is a prefix of ENV variables related
// to the tool configuration.
const EnvPrefix = "vfsacl"

// EnvSeparator is a section separator in ENV variables.
const EnvSeparator = "_"
