package casetype

// codeTable lists every case-type code the portal search form offers.
var codeTable = []Info{
	// 민사
	{Code: "가단", Name: "민사단독", Category: Civil, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "가합", Name: "민사합의", Category: Civil, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "가소", Name: "소액사건", Category: Civil, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "나", Name: "민사항소", Category: Civil, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피항소인"},
	{Code: "다", Name: "민사상고", Category: Civil, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피상고인"},
	{Code: "라", Name: "민사특별항고", Category: Civil, Level: LevelSpecialAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "마", Name: "민사재항고", Category: Civil, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "상대방"},
	{Code: "머", Name: "민사조정", Category: Civil, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "바", Name: "민사항고", Category: Civil, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "사", Name: "민사기타", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "서", Name: "송무", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "으", Name: "민사즉시항고", Category: Civil, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "저", Name: "제소전화해", Category: Civil, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "동버", Name: "동반민사항고", Category: Civil, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "동버집", Name: "동반민사항고집행", Category: Civil, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "동서", Name: "동반송무", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "동저", Name: "동반제소전화해", Category: Civil, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "재가단", Name: "재심민사단독", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재가소", Name: "재심소액", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재가합", Name: "재심민사합의", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재나", Name: "재심민사항소", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재다", Name: "재심민사상고", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재동버", Name: "재심동반민사항고", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재동서", Name: "재심동반송무", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재라", Name: "재심민사특별항고", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재루", Name: "재심신청", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재마", Name: "재심민사재항고", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재머", Name: "재심민사조정", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재으", Name: "재심민사즉시항고", Category: Civil, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "준재가단", Name: "준재심민사단독", Category: Civil, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재가소", Name: "준재심소액", Category: Civil, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재가합", Name: "준재심민사합의", Category: Civil, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재나", Name: "준재심민사항소", Category: Civil, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재머", Name: "준재심민사조정", Category: Civil, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심신청인", DefendantLabel: "상대방"},
	{Code: "루", Name: "비송", Category: Civil, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "비단", Name: "비송단독", Category: Civil, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "비합", Name: "비송합의", Category: Civil, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "정명", Name: "정정명령", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "주", Name: "주주", Category: Civil, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "책", Name: "책임", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "흐", Name: "회복", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "히", Name: "확인", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "국승", Name: "국가승계", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "국지", Name: "국가지정", Category: Civil, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	// 가사
	{Code: "드", Name: "가사소송", Category: Family, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "드단", Name: "가사단독", Category: Family, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "드합", Name: "가사합의", Category: Family, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "느", Name: "가사항소", Category: Family, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피항소인"},
	{Code: "느단", Name: "가사항소단독", Category: Family, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피항소인"},
	{Code: "느합", Name: "가사항소합의", Category: Family, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피항소인"},
	{Code: "르", Name: "가사항소", Category: Family, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피항소인"},
	{Code: "므", Name: "가사상고", Category: Family, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피상고인"},
	{Code: "브", Name: "가사사전처분", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "스", Name: "가사재항고/특별항고", Category: Family, Level: LevelReAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "조", Name: "가사조정", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "즈기", Name: "가사항고기각", Category: Family, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "즈단", Name: "가사즉시항고단독", Category: Family, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "즈합", Name: "가사즉시항고합의", Category: Family, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "호", Name: "호적", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "호기", Name: "호적기각", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "호명", Name: "호적명령", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "호파", Name: "호적파기", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "호협", Name: "호적협의", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "재느단", Name: "재심가사항소단독", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재느합", Name: "재심가사항소합의", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재드", Name: "재심가사", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재드단", Name: "재심가사단독", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재드합", Name: "재심가사합의", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재르", Name: "재심가사비송", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재므", Name: "재심가사상고", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재브", Name: "재심가사사전처분", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재스", Name: "재심가사재항고", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재후", Name: "재심후견", Category: Family, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "준재느단", Name: "준재심가사항소단독", Category: Family, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재느합", Name: "준재심가사항소합의", Category: Family, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재드단", Name: "준재심가사단독", Category: Family, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재드합", Name: "준재심가사합의", Category: Family, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재르", Name: "준재심가사비송", Category: Family, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심신청인", DefendantLabel: "상대방"},
	{Code: "준재므", Name: "준재심가사상고", Category: Family, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재스", Name: "준재심가사재항고", Category: Family, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심신청인", DefendantLabel: "상대방"},
	{Code: "성", Name: "성년후견", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "성로", Name: "성년후견특별항고", Category: Family, Level: LevelSpecialAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "성모", Name: "성년후견재항고", Category: Family, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "상대방"},
	{Code: "성초", Name: "성년후견기타", Category: Family, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "인", Name: "인지", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "인라", Name: "인지특별항고", Category: Family, Level: LevelSpecialAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "인마", Name: "인지재항고", Category: Family, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "상대방"},
	{Code: "인카", Name: "인지보전", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "자", Name: "자녀양육", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "정드", Name: "정정가사", Category: Family, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "정브", Name: "정정가사사전처분", Category: Family, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "정스", Name: "정정가사재항고", Category: Family, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "푸", Name: "가사집행", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "푸집", Name: "가사집행집행", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "푸초", Name: "가사집행기타", Category: Family, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "후", Name: "후견", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "후감", Name: "후견감독", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "후개", Name: "후견개시", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "후기", Name: "후견기각", Category: Family, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	// 형사
	{Code: "고단", Name: "형사단독", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "고합", Name: "형사합의", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "고약", Name: "형사약식", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "고약전", Name: "형사약식전환", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "고정", Name: "형사정식", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "노", Name: "형사항소", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "검사/항소인", DefendantLabel: "피고인"},
	{Code: "도", Name: "형사상고", Category: Criminal, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피고인"},
	{Code: "로", Name: "형사특별항고", Category: Criminal, Level: LevelSpecialAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "모", Name: "형사재항고", Category: Criminal, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "피고인"},
	{Code: "오", Name: "형사항고", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "초", Name: "형사기타", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "초기", Name: "형사기각", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "초보", Name: "형사보석", Category: Criminal, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	{Code: "초사", Name: "형사사면", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	{Code: "초재", Name: "형사재심", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	{Code: "초적", Name: "형사적용", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	{Code: "초치", Name: "형사치료감호", Category: Criminal, Level: LevelOther, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "감고", Name: "감형고단", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "감노", Name: "감형항소", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "검사/항소인", DefendantLabel: "피고인"},
	{Code: "감도", Name: "감형상고", Category: Criminal, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피고인"},
	{Code: "감로", Name: "감형특별항고", Category: Criminal, Level: LevelSpecialAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "감모", Name: "감형재항고", Category: Criminal, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "피고인"},
	{Code: "감오", Name: "감형항고", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "감초", Name: "감형기타", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	{Code: "보", Name: "보호관찰", Category: Criminal, Level: LevelOther, PlaintiffLabel: "검사", DefendantLabel: "피보호관찰자"},
	{Code: "보고", Name: "보호관찰고단", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "보노", Name: "보호관찰항소", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피고인"},
	{Code: "보도", Name: "보호관찰상고", Category: Criminal, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피고인"},
	{Code: "보로", Name: "보호관찰특별항고", Category: Criminal, Level: LevelSpecialAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "보모", Name: "보호관찰재항고", Category: Criminal, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "피고인"},
	{Code: "보오", Name: "보호관찰항고", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "보초", Name: "보호관찰기타", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	{Code: "동고", Name: "동반형사단독", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "동노", Name: "동반형사항소", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피고인"},
	{Code: "동도", Name: "동반형사상고", Category: Criminal, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피고인"},
	{Code: "동오", Name: "동반형사항고", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "동초", Name: "동반형사기타", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	{Code: "재감고", Name: "재심감형단독", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재감노", Name: "재심감형항소", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재감도", Name: "재심감형상고", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재고단", Name: "재심형사단독", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재고약", Name: "재심형사약식", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재고정", Name: "재심형사정식", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재고합", Name: "재심형사합의", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재노", Name: "재심형사항소", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재도", Name: "재심형사상고", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재무", Name: "재심무고", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "재수", Name: "재심수형", Category: Criminal, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "피고인"},
	{Code: "무", Name: "무고", Category: Criminal, Level: LevelOther, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "수", Name: "수형", Category: Criminal, Level: LevelOther, PlaintiffLabel: "검사", DefendantLabel: "수형인"},
	{Code: "수흐", Name: "수형회복", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "수형인"},
	{Code: "전고", Name: "전속형사단독", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "전노", Name: "전속형사항소", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피고인"},
	{Code: "전도", Name: "전속형사상고", Category: Criminal, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피고인"},
	{Code: "전로", Name: "전속형사특별항고", Category: Criminal, Level: LevelSpecialAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "전모", Name: "전속형사재항고", Category: Criminal, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "피고인"},
	{Code: "전오", Name: "전속형사항고", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "전초", Name: "전속형사기타", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	{Code: "치고", Name: "치료감호형사단독", Category: Criminal, Level: LevelFirst, PlaintiffLabel: "검사", DefendantLabel: "피고인"},
	{Code: "치노", Name: "치료감호형사항소", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피고인"},
	{Code: "치도", Name: "치료감호형사상고", Category: Criminal, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피고인"},
	{Code: "치로", Name: "치료감호형사특별항고", Category: Criminal, Level: LevelSpecialAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "치모", Name: "치료감호형사재항고", Category: Criminal, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "피고인"},
	{Code: "치오", Name: "치료감호형사항고", Category: Criminal, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "피고인"},
	{Code: "치초", Name: "치료감호형사기타", Category: Criminal, Level: LevelOther, PlaintiffLabel: "신청인", DefendantLabel: "피고인"},
	// 행정
	{Code: "구", Name: "행정본안", Category: Administrative, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "구단", Name: "행정단독", Category: Administrative, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "구합", Name: "행정합의", Category: Administrative, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "누", Name: "행정항소", Category: Administrative, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피항소인"},
	{Code: "두", Name: "행정상고", Category: Administrative, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "피상고인"},
	{Code: "아", Name: "행정항고", Category: Administrative, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "재구", Name: "재심행정", Category: Administrative, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재구단", Name: "재심행정단독", Category: Administrative, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재구합", Name: "재심행정합의", Category: Administrative, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재그", Name: "재심선거", Category: Administrative, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재너", Name: "재심선거항소", Category: Administrative, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재누", Name: "재심행정항소", Category: Administrative, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재두", Name: "재심행정상고", Category: Administrative, Level: LevelRetrial, PlaintiffLabel: "재심원고", DefendantLabel: "재심피고"},
	{Code: "재아", Name: "재심행정항고", Category: Administrative, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "준재구", Name: "준재심행정", Category: Administrative, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "준재누", Name: "준재심행정항소", Category: Administrative, Level: LevelQuasiRetrial, PlaintiffLabel: "준재심원고", DefendantLabel: "준재심피고"},
	{Code: "그", Name: "선거", Category: Administrative, Level: LevelFirst, PlaintiffLabel: "원고", DefendantLabel: "피고"},
	{Code: "너", Name: "선거항소", Category: Administrative, Level: LevelAppeal, PlaintiffLabel: "항소인", DefendantLabel: "피항소인"},
	// 신청/집행
	{Code: "버", Name: "집행항고", Category: Execution, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "버집", Name: "집행항고집행", Category: Execution, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "어", Name: "집행이의", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "처", Name: "집행문부여등", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "처집", Name: "집행문부여집행", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "차", Name: "독촉", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "차전", Name: "지급명령", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "타기", Name: "집행신청기각", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "타채", Name: "채권압류추심", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "타배", Name: "배당", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "타인", Name: "인도명령", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카", Name: "보전처분", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "카경", Name: "부동산경매", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "카공", Name: "공시최고", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카구", Name: "가구제", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "카기", Name: "보전처분기각", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "카기전", Name: "보전처분기각전자", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "카단", Name: "가압류/가처분단독", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "카담", Name: "담보취소", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카명", Name: "공시최고결정", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카불", Name: "보전이의", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카소", Name: "보전취소", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카열", Name: "기록열람", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카임", Name: "임시처분", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카정", Name: "보전정정", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카조", Name: "보전조정", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "카합", Name: "가압류/가처분합의", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "카확", Name: "보전확정", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "동어", Name: "동반집행이의", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "동처", Name: "동반집행문부여", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "동처집", Name: "동반집행문부여집행", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "동커", Name: "동반보전항고", Category: Execution, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "동터", Name: "동반집행항고", Category: Execution, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "재동어", Name: "재심동반집행이의", Category: Execution, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재버", Name: "재심집행항고", Category: Execution, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재부", Name: "재심부동산", Category: Execution, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재카경", Name: "재심부동산경매", Category: Execution, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재카기", Name: "재심보전처분기각", Category: Execution, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "재카담", Name: "재심담보취소", Category: Execution, Level: LevelRetrial, PlaintiffLabel: "재심신청인", DefendantLabel: "상대방"},
	{Code: "부", Name: "부동산", Category: Execution, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "상대방"},
	{Code: "추", Name: "추심", Category: Execution, Level: LevelApplication, PlaintiffLabel: "채권자", DefendantLabel: "채무자"},
	{Code: "커", Name: "보전항고", Category: Execution, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "코", Name: "보전상고", Category: Execution, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "상대방"},
	{Code: "크", Name: "보전재항고", Category: Execution, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "상대방"},
	{Code: "터", Name: "집행항고", Category: Execution, Level: LevelAppeal, PlaintiffLabel: "항고인", DefendantLabel: "상대방"},
	{Code: "토", Name: "집행상고", Category: Execution, Level: LevelFinalAppeal, PlaintiffLabel: "상고인", DefendantLabel: "상대방"},
	{Code: "트", Name: "집행재항고", Category: Execution, Level: LevelReAppeal, PlaintiffLabel: "재항고인", DefendantLabel: "상대방"},
	// 회생/파산
	{Code: "개기", Name: "개인회생기각", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "개보", Name: "개인회생보전", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "개확", Name: "개인회생확정", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "개회", Name: "개인회생", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "간회단", Name: "간이회생단독", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "간회합", Name: "간이회생합의", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "하기", Name: "파산기각", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "하단", Name: "파산단독", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "하면", Name: "파산면책", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "하합", Name: "파산합의", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "하확", Name: "파산확정", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "회기", Name: "회생기각", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "회단", Name: "회생단독", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "회합", Name: "회생합의", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	{Code: "회확", Name: "회생확정", Category: Bankruptcy, Level: LevelApplication, PlaintiffLabel: "신청인", DefendantLabel: "채권자"},
	// 기타
	{Code: "과", Name: "과태료", Category: Other, Level: LevelOther, PlaintiffLabel: "검사", DefendantLabel: "피청구인"},
}
