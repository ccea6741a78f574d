// Code generated from the JS8 reference LDPC(174,87) tables. DO NOT EDIT.
package js8

// ldpcMn holds, for each of the 174 codeword bits, the three parity-check
// rows (0-indexed) that bit participates in.
var ldpcMn = [ldpcN][3]int{
	{0, 24, 68},
	{1, 4, 72},
	{2, 31, 67},
	{3, 50, 60},
	{5, 62, 69},
	{6, 32, 78},
	{7, 49, 85},
	{8, 36, 42},
	{9, 40, 64},
	{10, 13, 63},
	{11, 74, 76},
	{12, 22, 80},
	{14, 15, 81},
	{16, 55, 65},
	{17, 52, 59},
	{18, 30, 51},
	{19, 66, 83},
	{20, 28, 71},
	{21, 23, 43},
	{25, 34, 75},
	{26, 35, 37},
	{27, 39, 41},
	{29, 53, 54},
	{33, 48, 86},
	{38, 56, 57},
	{44, 73, 82},
	{45, 61, 79},
	{46, 47, 84},
	{58, 70, 77},
	{0, 49, 52},
	{1, 46, 83},
	{2, 24, 78},
	{3, 5, 13},
	{4, 6, 79},
	{7, 33, 54},
	{8, 35, 68},
	{9, 42, 82},
	{10, 22, 73},
	{11, 16, 43},
	{12, 56, 75},
	{14, 26, 55},
	{15, 27, 28},
	{17, 18, 58},
	{19, 39, 62},
	{20, 34, 51},
	{21, 53, 63},
	{23, 61, 77},
	{25, 31, 76},
	{29, 71, 84},
	{30, 64, 86},
	{32, 38, 50},
	{36, 47, 74},
	{37, 69, 70},
	{40, 41, 67},
	{44, 66, 85},
	{45, 80, 81},
	{48, 65, 72},
	{57, 59, 65},
	{60, 64, 84},
	{0, 13, 20},
	{1, 12, 58},
	{2, 66, 81},
	{3, 31, 72},
	{4, 35, 53},
	{5, 42, 45},
	{6, 27, 74},
	{7, 32, 70},
	{8, 48, 75},
	{9, 57, 63},
	{10, 47, 67},
	{11, 18, 44},
	{14, 49, 60},
	{15, 21, 25},
	{16, 71, 79},
	{17, 39, 54},
	{19, 34, 50},
	{22, 24, 33},
	{23, 62, 86},
	{26, 38, 73},
	{28, 77, 82},
	{29, 69, 76},
	{30, 68, 83},
	{21, 36, 85},
	{37, 40, 80},
	{41, 43, 56},
	{46, 52, 61},
	{51, 55, 78},
	{59, 74, 80},
	{0, 38, 76},
	{1, 15, 40},
	{2, 30, 53},
	{3, 35, 77},
	{4, 44, 64},
	{5, 56, 84},
	{6, 13, 48},
	{7, 20, 45},
	{8, 14, 71},
	{9, 19, 61},
	{10, 16, 70},
	{11, 33, 46},
	{12, 67, 85},
	{17, 22, 42},
	{18, 63, 72},
	{23, 47, 78},
	{24, 69, 82},
	{25, 79, 86},
	{26, 31, 39},
	{27, 55, 68},
	{28, 62, 65},
	{29, 41, 49},
	{32, 36, 81},
	{34, 59, 73},
	{37, 54, 83},
	{43, 51, 60},
	{50, 52, 71},
	{57, 58, 66},
	{46, 55, 75},
	{0, 18, 36},
	{1, 60, 74},
	{2, 7, 65},
	{3, 59, 83},
	{4, 33, 38},
	{5, 25, 52},
	{6, 31, 56},
	{8, 51, 66},
	{9, 11, 14},
	{10, 50, 68},
	{12, 13, 64},
	{15, 30, 42},
	{16, 19, 35},
	{17, 79, 85},
	{20, 47, 58},
	{21, 39, 45},
	{22, 32, 61},
	{23, 29, 73},
	{24, 41, 63},
	{26, 48, 84},
	{27, 37, 72},
	{28, 43, 80},
	{34, 67, 69},
	{40, 62, 75},
	{44, 48, 70},
	{49, 57, 86},
	{47, 53, 82},
	{12, 54, 78},
	{76, 77, 81},
	{0, 1, 23},
	{2, 5, 74},
	{3, 55, 86},
	{4, 43, 52},
	{6, 49, 82},
	{7, 9, 27},
	{8, 54, 61},
	{10, 28, 66},
	{11, 32, 39},
	{13, 15, 19},
	{14, 34, 72},
	{16, 30, 38},
	{17, 35, 56},
	{18, 45, 75},
	{20, 41, 83},
	{21, 33, 58},
	{22, 25, 60},
	{24, 59, 64},
	{26, 63, 79},
	{29, 36, 65},
	{31, 44, 71},
	{37, 50, 85},
	{40, 76, 78},
	{42, 55, 67},
	{46, 73, 81},
	{39, 51, 77},
	{53, 60, 70},
	{45, 57, 68},
}

// ldpcNm holds, for each of the 87 parity-check rows, the number of valid
// bit-node neighbours (5, 6, or 7) and up to seven neighbouring bit indices
// (0-indexed; trailing entries beyond the valid count are unused padding).
var ldpcNm = [ldpcM]struct {
	Valid int
	Bits  [7]int
}{
	{6, [7]int{0, 29, 59, 88, 117, 146, 0}},
	{6, [7]int{1, 30, 60, 89, 118, 146, 0}},
	{6, [7]int{2, 31, 61, 90, 119, 147, 0}},
	{6, [7]int{3, 32, 62, 91, 120, 148, 0}},
	{6, [7]int{1, 33, 63, 92, 121, 149, 0}},
	{6, [7]int{4, 32, 64, 93, 122, 147, 0}},
	{6, [7]int{5, 33, 65, 94, 123, 150, 0}},
	{6, [7]int{6, 34, 66, 95, 119, 151, 0}},
	{6, [7]int{7, 35, 67, 96, 124, 152, 0}},
	{6, [7]int{8, 36, 68, 97, 125, 151, 0}},
	{6, [7]int{9, 37, 69, 98, 126, 153, 0}},
	{6, [7]int{10, 38, 70, 99, 125, 154, 0}},
	{6, [7]int{11, 39, 60, 100, 127, 144, 0}},
	{6, [7]int{9, 32, 59, 94, 127, 155, 0}},
	{6, [7]int{12, 40, 71, 96, 125, 156, 0}},
	{6, [7]int{12, 41, 72, 89, 128, 155, 0}},
	{6, [7]int{13, 38, 73, 98, 129, 157, 0}},
	{6, [7]int{14, 42, 74, 101, 130, 158, 0}},
	{6, [7]int{15, 42, 70, 102, 117, 159, 0}},
	{6, [7]int{16, 43, 75, 97, 129, 155, 0}},
	{6, [7]int{17, 44, 59, 95, 131, 160, 0}},
	{6, [7]int{18, 45, 72, 82, 132, 161, 0}},
	{6, [7]int{11, 37, 76, 101, 133, 162, 0}},
	{6, [7]int{18, 46, 77, 103, 134, 146, 0}},
	{6, [7]int{0, 31, 76, 104, 135, 163, 0}},
	{6, [7]int{19, 47, 72, 105, 122, 162, 0}},
	{6, [7]int{20, 40, 78, 106, 136, 164, 0}},
	{6, [7]int{21, 41, 65, 107, 137, 151, 0}},
	{6, [7]int{17, 41, 79, 108, 138, 153, 0}},
	{6, [7]int{22, 48, 80, 109, 134, 165, 0}},
	{6, [7]int{15, 49, 81, 90, 128, 157, 0}},
	{6, [7]int{2, 47, 62, 106, 123, 166, 0}},
	{6, [7]int{5, 50, 66, 110, 133, 154, 0}},
	{6, [7]int{23, 34, 76, 99, 121, 161, 0}},
	{6, [7]int{19, 44, 75, 111, 139, 156, 0}},
	{6, [7]int{20, 35, 63, 91, 129, 158, 0}},
	{6, [7]int{7, 51, 82, 110, 117, 165, 0}},
	{6, [7]int{20, 52, 83, 112, 137, 167, 0}},
	{6, [7]int{24, 50, 78, 88, 121, 157, 0}},
	{7, [7]int{21, 43, 74, 106, 132, 154, 171}},
	{6, [7]int{8, 53, 83, 89, 140, 168, 0}},
	{6, [7]int{21, 53, 84, 109, 135, 160, 0}},
	{6, [7]int{7, 36, 64, 101, 128, 169, 0}},
	{6, [7]int{18, 38, 84, 113, 138, 149, 0}},
	{6, [7]int{25, 54, 70, 92, 141, 166, 0}},
	{7, [7]int{26, 55, 64, 95, 132, 159, 173}},
	{6, [7]int{27, 30, 85, 99, 116, 170, 0}},
	{6, [7]int{27, 51, 69, 103, 131, 143, 0}},
	{6, [7]int{23, 56, 67, 94, 136, 141, 0}},
	{6, [7]int{6, 29, 71, 109, 142, 150, 0}},
	{6, [7]int{3, 50, 75, 114, 126, 167, 0}},
	{6, [7]int{15, 44, 86, 113, 124, 171, 0}},
	{6, [7]int{14, 29, 85, 114, 122, 149, 0}},
	{6, [7]int{22, 45, 63, 90, 143, 172, 0}},
	{6, [7]int{22, 34, 74, 112, 144, 152, 0}},
	{7, [7]int{13, 40, 86, 107, 116, 148, 169}},
	{6, [7]int{24, 39, 84, 93, 123, 158, 0}},
	{6, [7]int{24, 57, 68, 115, 142, 173, 0}},
	{6, [7]int{28, 42, 60, 115, 131, 161, 0}},
	{6, [7]int{14, 57, 87, 111, 120, 163, 0}},
	{7, [7]int{3, 58, 71, 113, 118, 162, 172}},
	{6, [7]int{26, 46, 85, 97, 133, 152, 0}},
	{5, [7]int{4, 43, 77, 108, 140, 0, 0}},
	{6, [7]int{9, 45, 68, 102, 135, 164, 0}},
	{6, [7]int{8, 49, 58, 92, 127, 163, 0}},
	{6, [7]int{13, 56, 57, 108, 119, 165, 0}},
	{6, [7]int{16, 54, 61, 115, 124, 153, 0}},
	{6, [7]int{2, 53, 69, 100, 139, 169, 0}},
	{6, [7]int{0, 35, 81, 107, 126, 173, 0}},
	{5, [7]int{4, 52, 80, 104, 139, 0, 0}},
	{6, [7]int{28, 52, 66, 98, 141, 172, 0}},
	{6, [7]int{17, 48, 73, 96, 114, 166, 0}},
	{6, [7]int{1, 56, 62, 102, 137, 156, 0}},
	{6, [7]int{25, 37, 78, 111, 134, 170, 0}},
	{6, [7]int{10, 51, 65, 87, 118, 147, 0}},
	{6, [7]int{19, 39, 67, 116, 140, 159, 0}},
	{6, [7]int{10, 47, 80, 88, 145, 168, 0}},
	{6, [7]int{28, 46, 79, 91, 145, 171, 0}},
	{6, [7]int{5, 31, 86, 103, 144, 168, 0}},
	{6, [7]int{26, 33, 73, 105, 130, 164, 0}},
	{5, [7]int{11, 55, 83, 87, 138, 0, 0}},
	{6, [7]int{12, 55, 61, 110, 145, 170, 0}},
	{6, [7]int{25, 36, 79, 104, 143, 150, 0}},
	{6, [7]int{16, 30, 81, 112, 120, 160, 0}},
	{5, [7]int{27, 48, 58, 93, 136, 0, 0}},
	{6, [7]int{6, 54, 82, 100, 130, 167, 0}},
	{6, [7]int{23, 49, 77, 105, 142, 148, 0}},
}

// ldpcParityHex is the 87x87 parity-check matrix P, one row per string,
// packed big-endian, 87 bits per row (rightmost hex nibble holds the low bits).
var ldpcParityHex = [ldpcM]string{
	"23bba830e23b6b6f50982e",
	"1f8e55da218c5df3309052",
	"ca7b3217cd92bd59a5ae20",
	"56f78313537d0f4382964e",
	"6be396b5e2e819e373340c",
	"293548a138858328af4210",
	"cb6c6afcdc28bb3f7c6e86",
	"3f2a86f5c5bd225c961150",
	"849dd2d63673481860f62c",
	"56cdaec6e7ae14b43feeee",
	"04ef5cfa3766ba778f45a4",
	"c525ae4bd4f627320a3974",
	"41fd9520b2e4abeb2f989c",
	"7fb36c24085a34d8c1dbc4",
	"40fc3e44bb7d2bb2756e44",
	"d38ab0a1d2e52a8ec3bc76",
	"3d0f929ef3949bd84d4734",
	"45d3814f504064f80549ae",
	"f14dbf263825d0bd04b05e",
	"db714f8f64e8ac7af1a76e",
	"8d0274de71e7c1a8055eb0",
	"51f81573dd4049b082de14",
	"d8f937f31822e57c562370",
	"b6537f417e61d1a7085336",
	"ecbd7c73b9cd34c3720c8a",
	"3d188ea477f6fa41317a4e",
	"1ac4672b549cd6dba79bcc",
	"a377253773ea678367c3f6",
	"0dbd816fba1543f721dc72",
	"ca4186dd44c3121565cf5c",
	"29c29dba9c545e267762fe",
	"1616d78018d0b4745ca0f2",
	"fe37802941d66dde02b99c",
	"a9fa8e50bcb032c85e3304",
	"83f640f1a48a8ebc0443ea",
	"3776af54ccfbae916afde6",
	"a8fc906976c35669e79ce0",
	"f08a91fb2e1f78290619a8",
	"cc9da55fe046d0cb3a770c",
	"d36d662a69ae24b74dcbd8",
	"40907b01280f03c0323946",
	"d037db825175d851f3af00",
	"1bf1490607c54032660ede",
	"0af7723161ec223080be86",
	"eca9afa0f6b01d92305edc",
	"7a8dec79a51e8ac5388022",
	"9059dfa2bb20ef7ef73ad4",
	"6abb212d9739dfc02580f2",
	"f6ad4824b87c80ebfce466",
	"d747bfc5fd65ef70fbd9bc",
	"612f63acc025b6ab476f7c",
	"05209a0abb530b9e7e34b0",
	"45b7ab6242b77474d9f11a",
	"6c280d2a0523d9c4bc5946",
	"f1627701a2d692fd9449e6",
	"8d9071b7e7a6a2eed6965e",
	"bf4f56e073271f6ab4bf80",
	"c0fc3ec4fb7d2bb2756644",
	"57da6d13cb96a7689b2790",
	"a9fa2eefa6f8796a355772",
	"164cc861bdd803c547f2ac",
	"cc6de59755420925f90ed2",
	"a0c0033a52ab6299802fd2",
	"b274db8abd3c6f396ea356",
	"97d4169cb33e7435718d90",
	"81cfc6f18c35b1e1f17114",
	"481a2a0df8a23583f82d6c",
	"081c29a10d468ccdbcecb6",
	"2c4142bf42b01e71076acc",
	"a6573f3dc8b16c9d19f746",
	"c87af9a5d5206abca532a8",
	"012dee2198eba82b19a1da",
	"b1ca4ea2e3d173bad4379c",
	"b33ec97be83ce413f9acc8",
	"5b0f7742bca86b8012609a",
	"37d8e0af9258b9e8c5f9b2",
	"35ad3fb0faeb5f1b0c30dc",
	"6114e08483043fd3f38a8a",
	"cd921fdf59e882683763f6",
	"95e45ecd0135aca9d6e6ae",
	"2e547dd7a05f6597aac516",
	"14cd0f642fc0c5fe3a65ca",
	"3a0a1dfd7eee29c2e827e0",
	"c8b5dffc335095dcdcaf2a",
	"3dd01a59d86310743ec752",
	"8abdb889efbe39a510a118",
	"3f231f212055371cf3e2a2",
}

// ldpcGenHex holds the rows of ldpcParityHex in a different row order, packed
// the same way. It is not the generator block: genMatrix (matrix.go) is built
// from parityMatrix, and nothing in the package reads this table.
var ldpcGenHex = [ldpcK]string{
	"23bba830e23b6b6f50982e",
	"1f8e55da218c5df3309052",
	"ca7b3217cd92bd59a5ae20",
	"56f78313537d0f4382964e",
	"29c29dba9c545e267762fe",
	"6be396b5e2e819e373340c",
	"293548a138858328af4210",
	"cb6c6afcdc28bb3f7c6e86",
	"3f2a86f5c5bd225c961150",
	"849dd2d63673481860f62c",
	"56cdaec6e7ae14b43feeee",
	"04ef5cfa3766ba778f45a4",
	"c525ae4bd4f627320a3974",
	"fe37802941d66dde02b99c",
	"41fd9520b2e4abeb2f989c",
	"40907b01280f03c0323946",
	"7fb36c24085a34d8c1dbc4",
	"40fc3e44bb7d2bb2756e44",
	"d38ab0a1d2e52a8ec3bc76",
	"3d0f929ef3949bd84d4734",
	"45d3814f504064f80549ae",
	"f14dbf263825d0bd04b05e",
	"f08a91fb2e1f78290619a8",
	"7a8dec79a51e8ac5388022",
	"ca4186dd44c3121565cf5c",
	"db714f8f64e8ac7af1a76e",
	"8d0274de71e7c1a8055eb0",
	"51f81573dd4049b082de14",
	"d037db825175d851f3af00",
	"d8f937f31822e57c562370",
	"1bf1490607c54032660ede",
	"1616d78018d0b4745ca0f2",
	"a9fa8e50bcb032c85e3304",
	"83f640f1a48a8ebc0443ea",
	"eca9afa0f6b01d92305edc",
	"3776af54ccfbae916afde6",
	"6abb212d9739dfc02580f2",
	"05209a0abb530b9e7e34b0",
	"612f63acc025b6ab476f7c",
	"0af7723161ec223080be86",
	"a8fc906976c35669e79ce0",
	"45b7ab6242b77474d9f11a",
	"b274db8abd3c6f396ea356",
	"9059dfa2bb20ef7ef73ad4",
	"3d188ea477f6fa41317a4e",
	"8d9071b7e7a6a2eed6965e",
	"a377253773ea678367c3f6",
	"ecbd7c73b9cd34c3720c8a",
	"b6537f417e61d1a7085336",
	"6c280d2a0523d9c4bc5946",
	"d36d662a69ae24b74dcbd8",
	"d747bfc5fd65ef70fbd9bc",
	"a9fa2eefa6f8796a355772",
	"cc9da55fe046d0cb3a770c",
	"f6ad4824b87c80ebfce466",
	"cc6de59755420925f90ed2",
	"164cc861bdd803c547f2ac",
	"c0fc3ec4fb7d2bb2756644",
	"0dbd816fba1543f721dc72",
	"a0c0033a52ab6299802fd2",
	"bf4f56e073271f6ab4bf80",
	"57da6d13cb96a7689b2790",
	"81cfc6f18c35b1e1f17114",
	"481a2a0df8a23583f82d6c",
	"1ac4672b549cd6dba79bcc",
	"c87af9a5d5206abca532a8",
	"97d4169cb33e7435718d90",
	"a6573f3dc8b16c9d19f746",
	"2c4142bf42b01e71076acc",
	"081c29a10d468ccdbcecb6",
	"5b0f7742bca86b8012609a",
	"012dee2198eba82b19a1da",
	"f1627701a2d692fd9449e6",
	"35ad3fb0faeb5f1b0c30dc",
	"b1ca4ea2e3d173bad4379c",
	"37d8e0af9258b9e8c5f9b2",
	"cd921fdf59e882683763f6",
	"6114e08483043fd3f38a8a",
	"2e547dd7a05f6597aac516",
	"95e45ecd0135aca9d6e6ae",
	"b33ec97be83ce413f9acc8",
	"c8b5dffc335095dcdcaf2a",
	"3dd01a59d86310743ec752",
	"14cd0f642fc0c5fe3a65ca",
	"3a0a1dfd7eee29c2e827e0",
	"8abdb889efbe39a510a118",
	"3f231f212055371cf3e2a2",
}
