package conf

// FirstValidLetter - Lowest letter accepted as a word initial in an item identifier
const FirstValidLetter byte = 'A'

// LastValidLetter - Highest letter accepted as a word initial in an item identifier
const LastValidLetter byte = 'Z'

// WordSeparator - The single character separating the two words of an item identifier
const WordSeparator byte = ' '

// ChainsPerBucket - Number of collision chains held by each bucket, one per letter A-Z
const ChainsPerBucket int = 26
