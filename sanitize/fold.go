package sanitize

// accentFolds maps characters outside the GSM repertoire to their closest
// unaccented spelling. Letters already in the default table are absent.
var accentFolds = map[rune]string{
	// Latin-1 Supplement
	'ª': "a",
	'º': "o",
	'À': "A",
	'Á': "A",
	'Â': "A",
	'Ã': "A",
	'È': "E",
	'Ê': "E",
	'Ë': "E",
	'Ì': "I",
	'Í': "I",
	'Î': "I",
	'Ï': "I",
	'Ð': "D",
	'Ò': "O",
	'Ó': "O",
	'Ô': "O",
	'Õ': "O",
	'Ù': "U",
	'Ú': "U",
	'Û': "U",
	'Ý': "Y",
	'Þ': "TH",
	'á': "a",
	'â': "a",
	'ã': "a",
	'ç': "c",
	'ê': "e",
	'ë': "e",
	'í': "i",
	'î': "i",
	'ï': "i",
	'ð': "d",
	'ó': "o",
	'ô': "o",
	'õ': "o",
	'ú': "u",
	'û': "u",
	'ý': "y",
	'þ': "th",
	'ÿ': "y",

	// Latin Extended-A
	'Ā': "A",
	'ā': "a",
	'Ă': "A",
	'ă': "a",
	'Ą': "A",
	'ą': "a",
	'Ć': "C",
	'ć': "c",
	'Ĉ': "C",
	'ĉ': "c",
	'Ċ': "C",
	'ċ': "c",
	'Č': "C",
	'č': "c",
	'Ď': "D",
	'ď': "d",
	'Đ': "D",
	'đ': "d",
	'Ē': "E",
	'ē': "e",
	'Ĕ': "E",
	'ĕ': "e",
	'Ė': "E",
	'ė': "e",
	'Ę': "E",
	'ę': "e",
	'Ě': "E",
	'ě': "e",
	'Ĝ': "G",
	'ĝ': "g",
	'Ğ': "G",
	'ğ': "g",
	'Ġ': "G",
	'ġ': "g",
	'Ģ': "G",
	'ģ': "g",
	'Ĥ': "H",
	'ĥ': "h",
	'Ħ': "H",
	'ħ': "h",
	'Ĩ': "I",
	'ĩ': "i",
	'Ī': "I",
	'ī': "i",
	'Ĭ': "I",
	'ĭ': "i",
	'Į': "I",
	'į': "i",
	'İ': "I",
	'ı': "i",
	'Ĳ': "IJ",
	'ĳ': "ij",
	'Ĵ': "J",
	'ĵ': "j",
	'Ķ': "K",
	'ķ': "k",
	'ĸ': "k",
	'Ĺ': "L",
	'ĺ': "l",
	'Ļ': "L",
	'ļ': "l",
	'Ľ': "L",
	'ľ': "l",
	'Ŀ': "L",
	'ŀ': "l",
	'Ł': "L",
	'ł': "l",
	'Ń': "N",
	'ń': "n",
	'Ņ': "N",
	'ņ': "n",
	'Ň': "N",
	'ň': "n",
	'ŉ': "n",
	'Ŋ': "N",
	'ŋ': "n",
	'Ō': "O",
	'ō': "o",
	'Ŏ': "O",
	'ŏ': "o",
	'Ő': "O",
	'ő': "o",
	'Œ': "OE",
	'œ': "oe",
	'Ŕ': "R",
	'ŕ': "r",
	'Ŗ': "R",
	'ŗ': "r",
	'Ř': "R",
	'ř': "r",
	'Ś': "S",
	'ś': "s",
	'Ŝ': "S",
	'ŝ': "s",
	'Ş': "S",
	'ş': "s",
	'Š': "S",
	'š': "s",
	'Ţ': "T",
	'ţ': "t",
	'Ť': "T",
	'ť': "t",
	'Ŧ': "T",
	'ŧ': "t",
	'Ũ': "U",
	'ũ': "u",
	'Ū': "U",
	'ū': "u",
	'Ŭ': "U",
	'ŭ': "u",
	'Ů': "U",
	'ů': "u",
	'Ű': "U",
	'ű': "u",
	'Ų': "U",
	'ų': "u",
	'Ŵ': "W",
	'ŵ': "w",
	'Ŷ': "Y",
	'ŷ': "y",
	'Ÿ': "Y",
	'Ź': "Z",
	'ź': "z",
	'Ż': "Z",
	'ż': "z",
	'Ž': "Z",
	'ž': "z",
	'ſ': "s",

	// Latin Extended-B
	'Ơ': "O",
	'ơ': "o",
	'Ư': "U",
	'ư': "u",
	'Ǎ': "A",
	'ǎ': "a",
	'Ǐ': "I",
	'ǐ': "i",
	'Ǒ': "O",
	'ǒ': "o",
	'Ǔ': "U",
	'ǔ': "u",
	'Ǖ': "U",
	'ǖ': "u",
	'Ǘ': "U",
	'ǘ': "u",
	'Ǚ': "U",
	'ǚ': "u",
	'Ǜ': "U",
	'ǜ': "u",
	'Ș': "S",
	'ș': "s",
	'Ț': "T",
	'ț': "t",

	// IPA
	'ɑ': "a",

	// Latin Extended Additional
	'Ạ': "A",
	'ạ': "a",
	'Ả': "A",
	'ả': "a",
	'Ấ': "A",
	'ấ': "a",
	'Ầ': "A",
	'ầ': "a",
	'Ẩ': "A",
	'ẩ': "a",
	'Ẫ': "A",
	'ẫ': "a",
	'Ậ': "A",
	'ậ': "a",
	'Ắ': "A",
	'ắ': "a",
	'Ằ': "A",
	'ằ': "a",
	'Ẳ': "A",
	'ẳ': "a",
	'Ẵ': "A",
	'ẵ': "a",
	'Ặ': "A",
	'ặ': "a",
	'Ẹ': "E",
	'ẹ': "e",
	'Ẻ': "E",
	'ẻ': "e",
	'Ẽ': "E",
	'ẽ': "e",
	'Ế': "E",
	'ế': "e",
	'Ề': "E",
	'ề': "e",
	'Ể': "E",
	'ể': "e",
	'Ễ': "E",
	'ễ': "e",
	'Ệ': "E",
	'ệ': "e",
	'Ỉ': "I",
	'ỉ': "i",
	'Ị': "I",
	'ị': "i",
	'Ọ': "O",
	'ọ': "o",
	'Ỏ': "O",
	'ỏ': "o",
	'Ố': "O",
	'ố': "o",
	'Ồ': "O",
	'ồ': "o",
	'Ổ': "O",
	'ổ': "o",
	'Ỗ': "O",
	'ỗ': "o",
	'Ộ': "O",
	'ộ': "o",
	'Ớ': "O",
	'ớ': "o",
	'Ờ': "O",
	'ờ': "o",
	'Ở': "O",
	'ở': "o",
	'Ỡ': "O",
	'ỡ': "o",
	'Ợ': "O",
	'ợ': "o",
	'Ụ': "U",
	'ụ': "u",
	'Ủ': "U",
	'ủ': "u",
	'Ứ': "U",
	'ứ': "u",
	'Ừ': "U",
	'ừ': "u",
	'Ử': "U",
	'ử': "u",
	'Ữ': "U",
	'ữ': "u",
	'Ự': "U",
	'ự': "u",
	'Ỳ': "Y",
	'ỳ': "y",
	'Ỵ': "Y",
	'ỵ': "y",
	'Ỷ': "Y",
	'ỷ': "y",
	'Ỹ': "Y",
	'ỹ': "y",

	// Spaces
	'\u00A0': " ",
	'\u2007': " ",
}
