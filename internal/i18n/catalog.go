package i18n

import "fmt"

// PromptID names one outbound message template.
type PromptID string

const (
	PromptLanguageSelect    PromptID = "language_select"
	PromptDoctorCode        PromptID = "doctor_code"
	PromptDoctorNotFound    PromptID = "doctor_not_found"
	PromptDoctorLookupError PromptID = "doctor_lookup_error"
	PromptConfirmDoctor     PromptID = "confirm_doctor"
	PromptDoctorRetry       PromptID = "doctor_retry"
	PromptPatientName       PromptID = "patient_name"
	PromptPatientAge        PromptID = "patient_age"
	PromptAgeInvalid        PromptID = "age_invalid"
	PromptPatientGender     PromptID = "patient_gender"
	PromptGenderInvalid     PromptID = "gender_invalid"
	PromptReasonForVisit    PromptID = "reason_for_visit"
	PromptChooseOption      PromptID = "choose_option"
	PromptAnswerAgain       PromptID = "answer_again"
	PromptRestateReason     PromptID = "restate_reason"
	PromptConsultationDate  PromptID = "consultation_date"
	PromptDateFormatInvalid PromptID = "date_format_invalid"
	PromptDateRangeInvalid  PromptID = "date_range_invalid"
	PromptAppointmentSum    PromptID = "appointment_summary"
	PromptConfirmRetry      PromptID = "confirm_retry"
	PromptScheduled         PromptID = "scheduled"
	PromptScheduledPartial  PromptID = "scheduled_partial"
	PromptAlreadyScheduled  PromptID = "already_scheduled"
	PromptTryAgain          PromptID = "try_again"
)

// Resolve returns the template for (id, locale) formatted with args. Unset or
// unknown locales fall back to English; an unknown id resolves to the generic
// try-again message so a missing table entry can never crash a turn.
func Resolve(id PromptID, loc Locale, args ...any) string {
	byLocale, ok := catalog[id]
	if !ok {
		byLocale = catalog[PromptTryAgain]
	}
	template, ok := byLocale[loc]
	if !ok || template == "" {
		template = byLocale[LocaleEnglish]
	}
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// catalog is data, not logic: every prompt the engine can emit exists for all
// six locales. Non-English entries carry an English gloss in parentheses, the
// convention the clinic's front desk asked for so staff can follow transcripts.
var catalog = map[PromptID]map[Locale]string{
	PromptLanguageSelect: {
		LocaleEnglish: "Welcome to OPPD WhatsApp Consultation Service!\nPlease select your preferred language:\n1. English\n2. हिंदी (Hindi)\n3. मराठी (Marathi)\n4. தமிழ் (Tamil)\n5. తెలుగు (Telugu)\n6. ಕನ್ನಡ (Kannada)\n\nReply with the number or the language name.",
	},
	PromptDoctorCode: {
		LocaleEnglish: "Please enter your doctor's code to schedule a consultation.",
		LocaleHindi:   "परामर्श निर्धारित करने के लिए कृपया अपने डॉक्टर का कोड दर्ज करें। (Please enter your doctor's code to schedule a consultation.)",
		LocaleMarathi: "सल्लामसलत निश्चित करण्यासाठी कृपया तुमच्या डॉक्टरांचा कोड टाका. (Please enter your doctor's code to schedule a consultation.)",
		LocaleTamil:   "ஆலோசனையை திட்டமிட உங்கள் மருத்துவரின் குறியீட்டை உள்ளிடவும். (Please enter your doctor's code to schedule a consultation.)",
		LocaleTelugu:  "సంప్రదింపు షెడ్యూల్ చేయడానికి దయచేసి మీ డాక్టర్ కోడ్‌ను నమోదు చేయండి. (Please enter your doctor's code to schedule a consultation.)",
		LocaleKannada: "ಸಮಾಲೋಚನೆ ನಿಗದಿಪಡಿಸಲು ದಯವಿಟ್ಟು ನಿಮ್ಮ ವೈದ್ಯರ ಕೋಡ್ ನಮೂದಿಸಿ. (Please enter your doctor's code to schedule a consultation.)",
	},
	PromptDoctorNotFound: {
		LocaleEnglish: "Sorry, I couldn't find a doctor with that code. Please check and try again.",
		LocaleHindi:   "क्षमा करें, उस कोड वाला कोई डॉक्टर नहीं मिला। कृपया जांच कर पुनः प्रयास करें। (Sorry, I couldn't find a doctor with that code. Please check and try again.)",
		LocaleMarathi: "माफ करा, त्या कोडचे डॉक्टर सापडले नाहीत. कृपया तपासून पुन्हा प्रयत्न करा. (Sorry, I couldn't find a doctor with that code. Please check and try again.)",
		LocaleTamil:   "மன்னிக்கவும், அந்த குறியீட்டுடன் மருத்துவர் யாரும் கிடைக்கவில்லை. சரிபார்த்து மீண்டும் முயற்சிக்கவும். (Sorry, I couldn't find a doctor with that code. Please check and try again.)",
		LocaleTelugu:  "క్షమించండి, ఆ కోడ్‌తో డాక్టర్ కనబడలేదు. దయచేసి సరిచూసి మళ్లీ ప్రయత్నించండి. (Sorry, I couldn't find a doctor with that code. Please check and try again.)",
		LocaleKannada: "ಕ್ಷಮಿಸಿ, ಆ ಕೋಡ್‌ನ ವೈದ್ಯರು ಸಿಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ಪರಿಶೀಲಿಸಿ ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ. (Sorry, I couldn't find a doctor with that code. Please check and try again.)",
	},
	PromptDoctorLookupError: {
		LocaleEnglish: "There was an error processing your doctor code. Please try again.",
		LocaleHindi:   "आपके डॉक्टर कोड को संसाधित करने में त्रुटि हुई। कृपया पुनः प्रयास करें। (There was an error processing your doctor code. Please try again.)",
		LocaleMarathi: "तुमचा डॉक्टर कोड प्रक्रिया करताना त्रुटी आली. कृपया पुन्हा प्रयत्न करा. (There was an error processing your doctor code. Please try again.)",
		LocaleTamil:   "உங்கள் மருத்துவர் குறியீட்டை செயலாக்குவதில் பிழை ஏற்பட்டது. மீண்டும் முயற்சிக்கவும். (There was an error processing your doctor code. Please try again.)",
		LocaleTelugu:  "మీ డాక్టర్ కోడ్‌ను ప్రాసెస్ చేయడంలో లోపం జరిగింది. దయచేసి మళ్లీ ప్రయత్నించండి. (There was an error processing your doctor code. Please try again.)",
		LocaleKannada: "ನಿಮ್ಮ ವೈದ್ಯರ ಕೋಡ್ ಪ್ರಕ್ರಿಯೆಯಲ್ಲಿ ದೋಷ ಉಂಟಾಯಿತು. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ. (There was an error processing your doctor code. Please try again.)",
	},
	PromptConfirmDoctor: {
		LocaleEnglish: "Thank you. You are scheduling a consultation with Dr. %s. Is this correct? (Yes/No)",
		LocaleHindi:   "धन्यवाद। आप डॉ. %s के साथ परामर्श निर्धारित कर रहे हैं। क्या यह सही है? (Yes/No) (You are scheduling a consultation with Dr. %[1]s. Is this correct?)",
		LocaleMarathi: "धन्यवाद. तुम्ही डॉ. %s यांच्यासोबत सल्लामसलत निश्चित करत आहात. हे बरोबर आहे का? (Yes/No) (You are scheduling a consultation with Dr. %[1]s. Is this correct?)",
		LocaleTamil:   "நன்றி. டாக்டர் %s உடன் ஆலோசனையை திட்டமிடுகிறீர்கள். இது சரியா? (Yes/No) (You are scheduling a consultation with Dr. %[1]s. Is this correct?)",
		LocaleTelugu:  "ధన్యవాదాలు. మీరు డాక్టర్ %s తో సంప్రదింపు షెడ్యూల్ చేస్తున్నారు. ఇది సరైనదేనా? (Yes/No) (You are scheduling a consultation with Dr. %[1]s. Is this correct?)",
		LocaleKannada: "ಧನ್ಯವಾದಗಳು. ನೀವು ಡಾ. %s ರವರೊಂದಿಗೆ ಸಮಾಲೋಚನೆ ನಿಗದಿಪಡಿಸುತ್ತಿದ್ದೀರಿ. ಇದು ಸರಿಯೇ? (Yes/No) (You are scheduling a consultation with Dr. %[1]s. Is this correct?)",
	},
	PromptDoctorRetry: {
		LocaleEnglish: "No problem. Let's try again. Please enter your doctor's code.",
		LocaleHindi:   "कोई बात नहीं। फिर से प्रयास करते हैं। कृपया अपने डॉक्टर का कोड दर्ज करें। (No problem. Let's try again. Please enter your doctor's code.)",
		LocaleMarathi: "काही हरकत नाही. पुन्हा प्रयत्न करूया. कृपया तुमच्या डॉक्टरांचा कोड टाका. (No problem. Let's try again. Please enter your doctor's code.)",
		LocaleTamil:   "பரவாயில்லை. மீண்டும் முயற்சிப்போம். உங்கள் மருத்துவரின் குறியீட்டை உள்ளிடவும். (No problem. Let's try again. Please enter your doctor's code.)",
		LocaleTelugu:  "పర్వాలేదు. మళ్లీ ప్రయత్నిద్దాం. దయచేసి మీ డాక్టర్ కోడ్‌ను నమోదు చేయండి. (No problem. Let's try again. Please enter your doctor's code.)",
		LocaleKannada: "ಪರವಾಗಿಲ್ಲ. ಮತ್ತೆ ಪ್ರಯತ್ನಿಸೋಣ. ದಯವಿಟ್ಟು ನಿಮ್ಮ ವೈದ್ಯರ ಕೋಡ್ ನಮೂದಿಸಿ. (No problem. Let's try again. Please enter your doctor's code.)",
	},
	PromptPatientName: {
		LocaleEnglish: "Great! Please enter your full name.",
		LocaleHindi:   "बहुत अच्छा! कृपया अपना पूरा नाम दर्ज करें। (Great! Please enter your full name.)",
		LocaleMarathi: "छान! कृपया तुमचे पूर्ण नाव टाका. (Great! Please enter your full name.)",
		LocaleTamil:   "அருமை! உங்கள் முழுப் பெயரை உள்ளிடவும். (Great! Please enter your full name.)",
		LocaleTelugu:  "చాలా బాగుంది! దయచేసి మీ పూర్తి పేరును నమోదు చేయండి. (Great! Please enter your full name.)",
		LocaleKannada: "ಚೆನ್ನಾಗಿದೆ! ದಯವಿಟ್ಟು ನಿಮ್ಮ ಪೂರ್ಣ ಹೆಸರನ್ನು ನಮೂದಿಸಿ. (Great! Please enter your full name.)",
	},
	PromptPatientAge: {
		LocaleEnglish: "Thank you. Now, please enter your age.",
		LocaleHindi:   "धन्यवाद। अब, कृपया अपनी आयु दर्ज करें। (Thank you. Now, please enter your age.)",
		LocaleMarathi: "धन्यवाद. आता, कृपया तुमचे वय टाका. (Thank you. Now, please enter your age.)",
		LocaleTamil:   "நன்றி. இப்போது, உங்கள் வயதை உள்ளிடவும். (Thank you. Now, please enter your age.)",
		LocaleTelugu:  "ధన్యవాదాలు. ఇప్పుడు, దయచేసి మీ వయస్సును నమోదు చేయండి. (Thank you. Now, please enter your age.)",
		LocaleKannada: "ಧನ್ಯವಾದಗಳು. ಈಗ, ದಯವಿಟ್ಟು ನಿಮ್ಮ ವಯಸ್ಸನ್ನು ನಮೂದಿಸಿ. (Thank you. Now, please enter your age.)",
	},
	PromptAgeInvalid: {
		LocaleEnglish: "Please enter a valid age between 1 and 120.",
		LocaleHindi:   "कृपया 1 से 120 के बीच एक वैध आयु दर्ज करें। (Please enter a valid age between 1 and 120.)",
		LocaleMarathi: "कृपया 1 ते 120 दरम्यान वैध वय टाका. (Please enter a valid age between 1 and 120.)",
		LocaleTamil:   "1 முதல் 120 வரை சரியான வயதை உள்ளிடவும். (Please enter a valid age between 1 and 120.)",
		LocaleTelugu:  "దయచేసి 1 నుండి 120 మధ్య చెల్లుబాటు అయ్యే వయస్సును నమోదు చేయండి. (Please enter a valid age between 1 and 120.)",
		LocaleKannada: "ದಯವಿಟ್ಟು 1 ರಿಂದ 120 ರ ನಡುವಿನ ಮಾನ್ಯ ವಯಸ್ಸನ್ನು ನಮೂದಿಸಿ. (Please enter a valid age between 1 and 120.)",
	},
	PromptPatientGender: {
		LocaleEnglish: "Thank you. Please enter your gender (Male/Female/Other).",
		LocaleHindi:   "धन्यवाद। कृपया अपना लिंग दर्ज करें (Male/Female/Other)। (Thank you. Please enter your gender.)",
		LocaleMarathi: "धन्यवाद. कृपया तुमचे लिंग टाका (Male/Female/Other). (Thank you. Please enter your gender.)",
		LocaleTamil:   "நன்றி. உங்கள் பாலினத்தை உள்ளிடவும் (Male/Female/Other). (Thank you. Please enter your gender.)",
		LocaleTelugu:  "ధన్యవాదాలు. దయచేసి మీ లింగాన్ని నమోదు చేయండి (Male/Female/Other). (Thank you. Please enter your gender.)",
		LocaleKannada: "ಧನ್ಯವಾದಗಳು. ದಯವಿಟ್ಟು ನಿಮ್ಮ ಲಿಂಗವನ್ನು ನಮೂದಿಸಿ (Male/Female/Other). (Thank you. Please enter your gender.)",
	},
	PromptGenderInvalid: {
		LocaleEnglish: "Please enter a valid gender (Male/Female/Other).",
		LocaleHindi:   "कृपया एक वैध लिंग दर्ज करें (Male/Female/Other)। (Please enter a valid gender.)",
		LocaleMarathi: "कृपया वैध लिंग टाका (Male/Female/Other). (Please enter a valid gender.)",
		LocaleTamil:   "சரியான பாலினத்தை உள்ளிடவும் (Male/Female/Other). (Please enter a valid gender.)",
		LocaleTelugu:  "దయచేసి చెల్లుబాటు అయ్యే లింగాన్ని నమోదు చేయండి (Male/Female/Other). (Please enter a valid gender.)",
		LocaleKannada: "ದಯವಿಟ್ಟು ಮಾನ್ಯ ಲಿಂಗವನ್ನು ನಮೂದಿಸಿ (Male/Female/Other). (Please enter a valid gender.)",
	},
	PromptReasonForVisit: {
		LocaleEnglish: "Thank you. Please describe your reason for seeking consultation in detail.",
		LocaleHindi:   "धन्यवाद। कृपया परामर्श लेने का अपना कारण विस्तार से बताएं। (Thank you. Please describe your reason for seeking consultation in detail.)",
		LocaleMarathi: "धन्यवाद. कृपया सल्लामसलत घेण्याचे तुमचे कारण सविस्तर सांगा. (Thank you. Please describe your reason for seeking consultation in detail.)",
		LocaleTamil:   "நன்றி. ஆலோசனை பெறுவதற்கான உங்கள் காரணத்தை விரிவாக விவரிக்கவும். (Thank you. Please describe your reason for seeking consultation in detail.)",
		LocaleTelugu:  "ధన్యవాదాలు. దయచేసి సంప్రదింపు కోరడానికి మీ కారణాన్ని వివరంగా తెలియజేయండి. (Thank you. Please describe your reason for seeking consultation in detail.)",
		LocaleKannada: "ಧನ್ಯವಾದಗಳು. ದಯವಿಟ್ಟು ಸಮಾಲೋಚನೆ ಬಯಸುವ ನಿಮ್ಮ ಕಾರಣವನ್ನು ವಿವರವಾಗಿ ತಿಳಿಸಿ. (Thank you. Please describe your reason for seeking consultation in detail.)",
	},
	PromptChooseOption: {
		LocaleEnglish: "Please select an option by typing the number:",
		LocaleHindi:   "कृपया नंबर टाइप करके एक विकल्प चुनें: (Please select an option by typing the number:)",
		LocaleMarathi: "कृपया क्रमांक टाइप करून एक पर्याय निवडा: (Please select an option by typing the number:)",
		LocaleTamil:   "எண்ணை தட்டச்சு செய்து ஒரு விருப்பத்தைத் தேர்ந்தெடுக்கவும்: (Please select an option by typing the number:)",
		LocaleTelugu:  "దయచేసి సంఖ్యను టైప్ చేసి ఒక ఎంపికను ఎంచుకోండి: (Please select an option by typing the number:)",
		LocaleKannada: "ದಯವಿಟ್ಟು ಸಂಖ್ಯೆಯನ್ನು ಟೈಪ್ ಮಾಡಿ ಒಂದು ಆಯ್ಕೆಯನ್ನು ಆರಿಸಿ: (Please select an option by typing the number:)",
	},
	PromptAnswerAgain: {
		LocaleEnglish: "Please provide your answer again.",
		LocaleHindi:   "कृपया अपना उत्तर फिर से दें। (Please provide your answer again.)",
		LocaleMarathi: "कृपया तुमचे उत्तर पुन्हा द्या. (Please provide your answer again.)",
		LocaleTamil:   "உங்கள் பதிலை மீண்டும் வழங்கவும். (Please provide your answer again.)",
		LocaleTelugu:  "దయచేసి మీ సమాధానాన్ని మళ్లీ ఇవ్వండి. (Please provide your answer again.)",
		LocaleKannada: "ದಯವಿಟ್ಟು ನಿಮ್ಮ ಉತ್ತರವನ್ನು ಮತ್ತೆ ನೀಡಿ. (Please provide your answer again.)",
	},
	PromptRestateReason: {
		LocaleEnglish: "Let's revisit your reason for consultation. Please describe it again in detail.",
		LocaleHindi:   "आइए आपके परामर्श के कारण पर फिर से विचार करें। कृपया इसे फिर से विस्तार से बताएं। (Let's revisit your reason for consultation. Please describe it again in detail.)",
		LocaleMarathi: "तुमच्या सल्लामसलतीच्या कारणाकडे पुन्हा वळूया. कृपया ते पुन्हा सविस्तर सांगा. (Let's revisit your reason for consultation. Please describe it again in detail.)",
		LocaleTamil:   "உங்கள் ஆலோசனைக்கான காரணத்தை மீண்டும் பார்ப்போம். அதை மீண்டும் விரிவாக விவரிக்கவும். (Let's revisit your reason for consultation. Please describe it again in detail.)",
		LocaleTelugu:  "మీ సంప్రదింపు కారణాన్ని మళ్లీ చూద్దాం. దయచేసి దాన్ని మళ్లీ వివరంగా తెలియజేయండి. (Let's revisit your reason for consultation. Please describe it again in detail.)",
		LocaleKannada: "ನಿಮ್ಮ ಸಮಾಲೋಚನೆಯ ಕಾರಣವನ್ನು ಮತ್ತೆ ನೋಡೋಣ. ದಯವಿಟ್ಟು ಅದನ್ನು ಮತ್ತೆ ವಿವರವಾಗಿ ತಿಳಿಸಿ. (Let's revisit your reason for consultation. Please describe it again in detail.)",
	},
	PromptConsultationDate: {
		LocaleEnglish: "Please enter your preferred date for consultation (DD/MM), e.g., 25/03 for March 25:",
		LocaleHindi:   "कृपया परामर्श के लिए अपनी पसंदीदा तिथि दर्ज करें (DD/MM), उदा., 25 मार्च के लिए 25/03: (Please enter your preferred date for consultation)",
		LocaleMarathi: "कृपया सल्लामसलत साठी तुमची पसंतीची तारीख टाका (DD/MM), उदा., 25 मार्च साठी 25/03: (Please enter your preferred date for consultation)",
		LocaleTamil:   "ஆலோசனைக்கான உங்கள் விருப்பமான தேதியை உள்ளிடவும் (DD/MM), எ.கா., மார்ச் 25க்கு 25/03: (Please enter your preferred date for consultation)",
		LocaleTelugu:  "దయచేసి సంప్రదింపు కోసం మీకు ఇష్టమైన తేదీని నమోదు చేయండి (DD/MM), ఉదా., మార్చి 25 కి 25/03: (Please enter your preferred date for consultation)",
		LocaleKannada: "ದಯವಿಟ್ಟು ಸಮಾಲೋಚನೆಗಾಗಿ ನಿಮ್ಮ ಆದ್ಯತೆಯ ದಿನಾಂಕವನ್ನು ನಮೂದಿಸಿ (DD/MM), ಉದಾ., ಮಾರ್ಚ್ 25 ಕ್ಕೆ 25/03: (Please enter your preferred date for consultation)",
	},
	PromptDateFormatInvalid: {
		LocaleEnglish: "Please enter a valid date in the format DD/MM (e.g., 15/03 for March 15).",
		LocaleHindi:   "कृपया DD/MM प्रारूप में एक वैध तिथि दर्ज करें (उदाहरण के लिए, 15 मार्च के लिए 15/03)। (Please enter a valid date in DD/MM format)",
		LocaleMarathi: "कृपया DD/MM स्वरूपात वैध तारीख प्रविष्ट करा (उदा., 15 मार्च साठी 15/03). (Please enter a valid date in DD/MM format)",
		LocaleTamil:   "DD/MM வடிவமைப்பில் சரியான தேதியை உள்ளிடவும் (எ.கா., மார்ச் 15க்கு 15/03). (Please enter a valid date in DD/MM format)",
		LocaleTelugu:  "దయచేసి DD/MM ఫార్మాట్‌లో చెల్లుబాటు అయ్యే తేదీని నమోదు చేయండి (ఉదా., మార్చి 15 కి 15/03). (Please enter a valid date in DD/MM format)",
		LocaleKannada: "ದಯವಿಟ್ಟು DD/MM ಫಾರ್ಮ್ಯಾಟ್‌ನಲ್ಲಿ ಮಾನ್ಯವಾದ ದಿನಾಂಕವನ್ನು ನಮೂದಿಸಿ (ಉದಾ., ಮಾರ್ಚ್ 15 ಕ್ಕೆ 15/03). (Please enter a valid date in DD/MM format)",
	},
	PromptDateRangeInvalid: {
		LocaleEnglish: "Please enter a valid date. Day should be between 1-31 and month between 1-12.",
		LocaleHindi:   "कृपया एक वैध तिथि दर्ज करें। दिन 1-31 के बीच और महीना 1-12 के बीच होना चाहिए। (Please enter a valid date)",
		LocaleMarathi: "कृपया वैध तारीख प्रविष्ट करा. दिवस 1-31 आणि महिना 1-12 दरम्यान असावा. (Please enter a valid date)",
		LocaleTamil:   "சரியான தேதியை உள்ளிடவும். நாள் 1-31க்கும், மாதம் 1-12க்கும் இடையில் இருக்க வேண்டும். (Please enter a valid date)",
		LocaleTelugu:  "దయచేసి చెల్లుబాటు అయ్యే తేదీని నమోదు చేయండి. రోజు 1-31 మధ్య మరియు నెల 1-12 మధ్య ఉండాలి. (Please enter a valid date)",
		LocaleKannada: "ದಯವಿಟ್ಟು ಮಾನ್ಯವಾದ ದಿನಾಂಕವನ್ನು ನಮೂದಿಸಿ. ದಿನವು 1-31 ರ ನಡುವೆ ಮತ್ತು ತಿಂಗಳು 1-12 ರ ನಡುವೆ ಇರಬೇಕು. (Please enter a valid date)",
	},
	PromptAppointmentSum: {
		LocaleEnglish: "Please confirm your appointment details:\n\nPatient Name: %[1]s\nAge: %[2]s\nGender: %[3]s\nDoctor: Dr. %[4]s\nAppointment Date: %[5]s\n\nType 'confirm' or 'yes' to confirm your appointment, or 'back' to change the date.",
		LocaleHindi:   "कृपया अपने अपॉइंटमेंट विवरण की पुष्टि करें:\n\nरोगी का नाम: %[1]s\nआयु: %[2]s\nलिंग: %[3]s\nडॉक्टर: डॉ. %[4]s\nअपॉइंटमेंट तिथि: %[5]s\n\nअपने अपॉइंटमेंट की पुष्टि करने के लिए 'confirm' या 'yes' टाइप करें, या तिथि बदलने के लिए 'back' टाइप करें। (Type 'confirm' or 'yes' to confirm your appointment, or 'back' to change the date.)",
		LocaleMarathi: "कृपया तुमच्या अपॉइंटमेंटच्या तपशीलांची पुष्टी करा:\n\nरुग्णाचे नाव: %[1]s\nवय: %[2]s\nलिंग: %[3]s\nडॉक्टर: डॉ. %[4]s\nअपॉइंटमेंट तारीख: %[5]s\n\nतुमची अपॉइंटमेंट पुष्टी करण्यासाठी 'confirm' किंवा 'yes' टाइप करा, किंवा तारीख बदलण्यासाठी 'back' टाइप करा. (Type 'confirm' or 'yes' to confirm your appointment, or 'back' to change the date.)",
		LocaleTamil:   "உங்கள் சந்திப்பு விவரங்களை உறுதிப்படுத்தவும்:\n\nநோயாளியின் பெயர்: %[1]s\nவயது: %[2]s\nபாலினம்: %[3]s\nமருத்துவர்: Dr. %[4]s\nசந்திப்பு தேதி: %[5]s\n\nஉங்கள் சந்திப்பை உறுதிப்படுத்த 'confirm' அல்லது 'yes' என்று தட்டச்சு செய்யவும், அல்லது தேதியை மாற்ற 'back' என்று தட்டச்சு செய்யவும். (Type 'confirm' or 'yes' to confirm your appointment, or 'back' to change the date.)",
		LocaleTelugu:  "దయచేసి మీ అపాయింట్మెంట్ వివరాలను నిర్ధారించండి:\n\nరోగి పేరు: %[1]s\nవయస్సు: %[2]s\nలింగం: %[3]s\nడాక్టర్: డా. %[4]s\nఅపాయింట్మెంట్ తేదీ: %[5]s\n\nమీ అపాయింట్మెంట్‌ని నిర్ధారించడానికి 'confirm' లేదా 'yes' టైప్ చేయండి, లేదా తేదీని మార్చడానికి 'back' టైప్ చేయండి. (Type 'confirm' or 'yes' to confirm your appointment, or 'back' to change the date.)",
		LocaleKannada: "ದಯವಿಟ್ಟು ನಿಮ್ಮ ಅಪಾಯಿಂಟ್‌ಮೆಂಟ್ ವಿವರಗಳನ್ನು ದೃಢೀಕರಿಸಿ:\n\nರೋಗಿಯ ಹೆಸರು: %[1]s\nವಯಸ್ಸು: %[2]s\nಲಿಂಗ: %[3]s\nವೈದ್ಯರು: ಡಾ. %[4]s\nಅಪಾಯಿಂಟ್‌ಮೆಂಟ್ ದಿನಾಂಕ: %[5]s\n\nನಿಮ್ಮ ಅಪಾಯಿಂಟ್‌ಮೆಂಟ್ ಅನ್ನು ದೃಢೀಕರಿಸಲು 'confirm' ಅಥವಾ 'yes' ಎಂದು ಟೈಪ್ ಮಾಡಿ, ಅಥವಾ ದಿನಾಂಕವನ್ನು ಬದಲಾಯಿಸಲು 'back' ಎಂದು ಟೈಪ್ ಮಾಡಿ. (Type 'confirm' or 'yes' to confirm your appointment, or 'back' to change the date.)",
	},
	PromptConfirmRetry: {
		LocaleEnglish: "To confirm your appointment, please type 'confirm' or 'yes'. To change the date, type 'back'.",
		LocaleHindi:   "अपने अपॉइंटमेंट की पुष्टि करने के लिए, कृपया 'confirm' या 'yes' टाइप करें। तिथि बदलने के लिए, 'back' टाइप करें। (To confirm your appointment, please type 'confirm' or 'yes')",
		LocaleMarathi: "तुमच्या अपॉइंटमेंटची पुष्टी करण्यासाठी, कृपया 'confirm' किंवा 'yes' टाइप करा. तारीख बदलण्यासाठी, 'back' टाइप करा. (To confirm your appointment, please type 'confirm' or 'yes')",
		LocaleTamil:   "உங்கள் சந்திப்பை உறுதிப்படுத்த, 'confirm' அல்லது 'yes' என்று தட்டச்சு செய்யவும். தேதியை மாற்ற, 'back' என்று தட்டச்சு செய்யவும். (To confirm your appointment, please type 'confirm' or 'yes')",
		LocaleTelugu:  "మీ అపాయింట్మెంట్‌ని నిర్ధారించడానికి, దయచేసి 'confirm' లేదా 'yes' అని టైప్ చేయండి. తేదీని మార్చడానికి, 'back' అని టైప్ చేయండి. (To confirm your appointment, please type 'confirm' or 'yes')",
		LocaleKannada: "ನಿಮ್ಮ ಅಪಾಯಿಂಟ್‌ಮೆಂಟ್ ಅನ್ನು ದೃಢೀಕರಿಸಲು, ದಯವಿಟ್ಟು 'confirm' ಅಥವಾ 'yes' ಎಂದು ಟೈಪ್ ಮಾಡಿ. ದಿನಾಂಕವನ್ನು ಬದಲಾಯಿಸಲು, 'back' ಎಂದು ಟೈಪ್ ಮಾಡಿ. (To confirm your appointment, please type 'confirm' or 'yes')",
	},
	PromptScheduled: {
		LocaleEnglish: "Thank you! Your appointment with Dr. %[1]s has been scheduled for %[2]s. You will receive a confirmation message with further details shortly.",
		LocaleHindi:   "धन्यवाद! डॉ. %[1]s के साथ आपका अपॉइंटमेंट %[2]s के लिए निर्धारित किया गया है। आपको जल्द ही आगे के विवरण के साथ एक पुष्टिकरण संदेश प्राप्त होगा। (Thank you! Your appointment has been scheduled.)",
		LocaleMarathi: "धन्यवाद! डॉ. %[1]s सोबत तुमची अपॉइंटमेंट %[2]s साठी निश्चित केली आहे. तुम्हाला लवकरच पुढील तपशीलांसह पुष्टीकरण संदेश मिळेल. (Thank you! Your appointment has been scheduled.)",
		LocaleTamil:   "நன்றி! டாக்டர் %[1]s உடனான உங்கள் சந்திப்பு %[2]s அன்று திட்டமிடப்பட்டுள்ளது. விரைவில் மேலும் விவரங்களுடன் ஒரு உறுதிப்படுத்தல் செய்தியைப் பெறுவீர்கள். (Thank you! Your appointment has been scheduled.)",
		LocaleTelugu:  "ధన్యవాదాలు! డాక్టర్ %[1]s తో మీ అపాయింట్మెంట్ %[2]s కి షెడ్యూల్ చేయబడింది. మీరు త్వరలో మరిన్ని వివరాలతో నిర్ధారణ సందేశాన్ని అందుకుంటారు. (Thank you! Your appointment has been scheduled.)",
		LocaleKannada: "ಧನ್ಯವಾದಗಳು! ಡಾ. %[1]s ರವರೊಂದಿಗೆ ನಿಮ್ಮ ಅಪಾಯಿಂಟ್‌ಮೆಂಟ್ ಅನ್ನು %[2]s ರಂದು ನಿಗದಿಪಡಿಸಲಾಗಿದೆ. ನೀವು ಶೀಘ್ರದಲ್ಲೇ ಹೆಚ್ಚಿನ ವಿವರಗಳೊಂದಿಗೆ ದೃಢೀಕರಣ ಸಂದೇಶವನ್ನು ಪಡೆಯುತ್ತೀರಿ. (Thank you! Your appointment has been scheduled.)",
	},
	PromptScheduledPartial: {
		LocaleEnglish: "Thank you for providing the information. Your consultation has been scheduled. You will receive confirmation details shortly.",
		LocaleHindi:   "जानकारी देने के लिए धन्यवाद। आपका परामर्श निर्धारित कर दिया गया है। आपको जल्द ही पुष्टिकरण विवरण प्राप्त होगा। (Thank you for providing the information. Your consultation has been scheduled.)",
		LocaleMarathi: "माहिती दिल्याबद्दल धन्यवाद. तुमची सल्लामसलत निश्चित केली आहे. तुम्हाला लवकरच पुष्टीकरण तपशील मिळतील. (Thank you for providing the information. Your consultation has been scheduled.)",
		LocaleTamil:   "தகவல் வழங்கியதற்கு நன்றி. உங்கள் ஆலோசனை திட்டமிடப்பட்டுள்ளது. விரைவில் உறுதிப்படுத்தல் விவரங்களைப் பெறுவீர்கள். (Thank you for providing the information. Your consultation has been scheduled.)",
		LocaleTelugu:  "సమాచారం అందించినందుకు ధన్యవాదాలు. మీ సంప్రదింపు షెడ్యూల్ చేయబడింది. మీరు త్వరలో నిర్ధారణ వివరాలను అందుకుంటారు. (Thank you for providing the information. Your consultation has been scheduled.)",
		LocaleKannada: "ಮಾಹಿತಿ ನೀಡಿದ್ದಕ್ಕಾಗಿ ಧನ್ಯವಾದಗಳು. ನಿಮ್ಮ ಸಮಾಲೋಚನೆ ನಿಗದಿಯಾಗಿದೆ. ನೀವು ಶೀಘ್ರದಲ್ಲೇ ದೃಢೀಕರಣ ವಿವರಗಳನ್ನು ಪಡೆಯುತ್ತೀರಿ. (Thank you for providing the information. Your consultation has been scheduled.)",
	},
	PromptAlreadyScheduled: {
		LocaleEnglish: "Your consultation has already been scheduled. If you need to make changes or schedule a new consultation, please start a new conversation.",
		LocaleHindi:   "आपका परामर्श पहले ही निर्धारित किया जा चुका है। यदि आपको बदलाव करने हैं या नया परामर्श निर्धारित करना है, तो कृपया नई बातचीत शुरू करें। (Your consultation has already been scheduled.)",
		LocaleMarathi: "तुमची सल्लामसलत आधीच निश्चित केली आहे. बदल करायचे असल्यास किंवा नवीन सल्लामसलत निश्चित करायची असल्यास, कृपया नवीन संभाषण सुरू करा. (Your consultation has already been scheduled.)",
		LocaleTamil:   "உங்கள் ஆலோசனை ஏற்கனவே திட்டமிடப்பட்டுள்ளது. மாற்றங்கள் செய்ய அல்லது புதிய ஆலோசனையை திட்டமிட, புதிய உரையாடலைத் தொடங்கவும். (Your consultation has already been scheduled.)",
		LocaleTelugu:  "మీ సంప్రదింపు ఇప్పటికే షెడ్యూల్ చేయబడింది. మార్పులు చేయాలంటే లేదా కొత్త సంప్రదింపు షెడ్యూల్ చేయాలంటే, దయచేసి కొత్త సంభాషణ ప్రారంభించండి. (Your consultation has already been scheduled.)",
		LocaleKannada: "ನಿಮ್ಮ ಸಮಾಲೋಚನೆ ಈಗಾಗಲೇ ನಿಗದಿಯಾಗಿದೆ. ಬದಲಾವಣೆ ಮಾಡಬೇಕಾದರೆ ಅಥವಾ ಹೊಸ ಸಮಾಲೋಚನೆ ನಿಗದಿಪಡಿಸಬೇಕಾದರೆ, ದಯವಿಟ್ಟು ಹೊಸ ಸಂಭಾಷಣೆ ಪ್ರಾರಂಭಿಸಿ. (Your consultation has already been scheduled.)",
	},
	PromptTryAgain: {
		LocaleEnglish: "Sorry, something went wrong. Please try again.",
		LocaleHindi:   "क्षमा करें, कुछ गलत हो गया। कृपया पुनः प्रयास करें। (Sorry, something went wrong. Please try again.)",
		LocaleMarathi: "माफ करा, काहीतरी चूक झाली. कृपया पुन्हा प्रयत्न करा. (Sorry, something went wrong. Please try again.)",
		LocaleTamil:   "மன்னிக்கவும், ஏதோ தவறு நடந்தது. மீண்டும் முயற்சிக்கவும். (Sorry, something went wrong. Please try again.)",
		LocaleTelugu:  "క్షమించండి, ఏదో తప్పు జరిగింది. దయచేసి మళ్లీ ప్రయత్నించండి. (Sorry, something went wrong. Please try again.)",
		LocaleKannada: "ಕ್ಷಮಿಸಿ, ಏನೋ ತಪ್ಪಾಗಿದೆ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ. (Sorry, something went wrong. Please try again.)",
	},
}
