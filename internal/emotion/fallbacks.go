package emotion

// fallbackResponses 按语言和情绪索引的静态话术
// 未收录的语言统一回退到英语
var fallbackResponses = map[string]map[Label]string{
	"en": {
		Joy:      "🌟 That's amazing! Your happiness is wonderful to hear. What's bringing you all this joy today? I'd love to know more!",
		Sadness:  "💙 I hear you, and I want you to know it's completely okay to feel this way. I'm here to listen and support you through this. What's on your mind?",
		Anger:    "⚡ I can feel the intensity here, and that's completely valid. Sometimes frustration is necessary. What's at the core of this for you?",
		Fear:     "🤝 I understand that something is causing you concern. Fear is natural, and reaching out shows real courage. I'm here to support you. What worries you?",
		Disgust:  "😔 I sense something has disappointed or bothered you deeply. Your reaction makes sense. Do you want to talk about what's troubling you?",
		Surprise: "😲 Wow! That sounds like quite the unexpected turn! Tell me everything, I'd love to hear what surprised you so!",
		Neutral:  "😊 I appreciate you sharing that perspective with me. I'm curious, how are you really feeling about all of this? I'm here to listen.",
	},
	"es": {
		Joy:      "¡Eso es maravilloso! ¡Puedo sentir tu alegría! ¿Qué te trae tanta felicidad?",
		Sadness:  "Siento la tristeza en tus palabras. Estoy aquí para ti. ¿Qué te preocupa?",
		Anger:    "Siento tu frustración. ¿Qué te molesta en este momento?",
		Fear:     "Siento tu preocupación. No te preocupes, estoy aquí para escucharte. ¿Qué te asusta?",
		Disgust:  "Algo claramente no te parece bien. ¿Qué te molesta específicamente?",
		Surprise: "¡Vaya! ¡Qué giro inesperado! Cuéntame qué te sorprendió?",
		Neutral:  "Aprecio tu sinceridad. ¿Qué hay en tu mente?",
	},
	"fr": {
		Joy:      "C'est magnifique! Je peux sentir votre joie! Qu'est-ce qui vous apporte ce bonheur?",
		Sadness:  "J'entends la tristesse dans vos paroles. Je suis là pour vous. Qu'est-ce qui vous préoccupe?",
		Anger:    "Je sens votre frustration. Qu'est-ce qui vous ennuie vraiment en ce moment?",
		Fear:     "Je sens votre inquiétude. Ne vous inquiétez pas, je suis là pour vous écouter. Qu'est-ce qui vous fait peur?",
		Disgust:  "Quelque chose ne vous plaît clairement pas. Qu'est-ce qui vous dérange spécifiquement?",
		Surprise: "Wow! Quel revirement inattendu! Dites-moi ce qui vous a surpris?",
		Neutral:  "J'apprécie votre sincérité. À quoi pensez-vous?",
	},
	"de": {
		Joy:      "Das ist wunderbar! Ich kann deine Freude spüren! Was bringt dir dieses Glück?",
		Sadness:  "Ich höre die Traurigkeit in deinen Worten. Ich bin für dich da. Was beunruhigt dich?",
		Anger:    "Ich spüre deine Frustration. Was ärgert dich wirklich im Moment?",
		Fear:     "Ich spüre deine Besorgnis. Keine Sorge, ich bin hier, um zuzuhören. Was macht dir Angst?",
		Disgust:  "Etwas gefällt dir offensichtlich nicht. Was stört dich konkret?",
		Surprise: "Wow! Was für eine unerwartete Wendung! Sag mir, was dich überrascht hat?",
		Neutral:  "Ich schätze deine Offenheit. Was beschäftigt dich?",
	},
	"it": {
		Joy:      "È meraviglioso! Posso sentire la tua gioia! Cosa ti porta tanta felicità?",
		Sadness:  "Sento la tristezza nelle tue parole. Sono qui per te. Cosa ti preoccupa?",
		Anger:    "Sento la tua frustrazione. Cosa ti sta davvero infastidiendo?",
		Fear:     "Sento la tua preoccupazione. Non preoccuparti, sono qui per ascoltarti. Cosa ti fa paura?",
		Disgust:  "Qualcosa chiaramente non ti piace. Cosa ti infastidisce nello specifico?",
		Surprise: "Wow! Che colpo di scena inaspettato! Dimmi cosa ti ha sorpreso?",
		Neutral:  "Apprezzo la tua sincerità. Cosa ti occupa?",
	},
	"pt": {
		Joy:      "Isso é maravilhoso! Posso sentir sua alegria! O que traz tanta felicidade?",
		Sadness:  "Sinto a tristeza nas suas palavras. Estou aqui para você. O que o preocupa?",
		Anger:    "Sinto sua frustração. O que realmente está te incomodando?",
		Fear:     "Sinto sua preocupação. Não se preocupe, estou aqui para ouvir. O que o assusta?",
		Disgust:  "Algo claramente não agrada a você. O que especificamente o incomoda?",
		Surprise: "Uau! Que volta inesperada! Diga-me o que o surpreendeu?",
		Neutral:  "Aprecio sua sinceridade. O que ocupa sua mente?",
	},
	"ru": {
		Joy:      "Это прекрасно! Я чувствую твою радость! Что приносит тебе такое счастье?",
		Sadness:  "Я слышу грусть в твоих словах. Я здесь для тебя. Что тебя беспокоит?",
		Anger:    "Я чувствую твое разочарование. Что тебя на самом деле раздражает?",
		Fear:     "Я чувствую твою тревогу. Не волнуйся, я здесь, чтобы слушать. Что тебя пугает?",
		Disgust:  "Что-то явно тебе не нравится. Что конкретно тебя раздражает?",
		Surprise: "Вау! Какой неожиданный поворот! Расскажи, что тебя удивило?",
		Neutral:  "Я ценю твою откровенность. О чем ты думаешь?",
	},
	"ja": {
		Joy:      "素晴らしい!あなたの喜びが感じられます!何があなたにこんな幸せをもたらしていますか?",
		Sadness:  "あなたの言葉から悲しみを感じます。私があなたのためにここにいます。何があなたを悩ませていますか?",
		Anger:    "あなたの欲求不満を感じます。何が本当にあなたを困らせていますか?",
		Fear:     "あなたの懸念を感じます。心配しないでください。私はここにいてあなたの話を聞きます。何があなたを怖がらせていますか?",
		Disgust:  "明らかに何かあなたを不快にさせています。具体的に何があなたを不快にしていますか?",
		Surprise: "わあ!何か予期しない展開です!何があなたを驚かせましたか?",
		Neutral:  "あなたの誠実さを感謝します。何があなたの心を占めていますか?",
	},
	"ko": {
		Joy:      "정말 멋져요! 당신의 기쁨이 느껴져요! 무엇이 당신에게 이런 행복을 주나요?",
		Sadness:  "당신의 말에서 슬픔을 느낍니다. 저는 당신을 위해 여기 있습니다. 무엇이 당신을 걱정하게 하나요?",
		Anger:    "당신의 좌절감이 느껴집니다. 무엇이 정말로 당신을 짜증나게 하나요?",
		Fear:     "당신의 우려가 느껴집니다. 걱정하지 마세요. 저는 여기서 당신의 말을 들을 준비가 되어 있습니다. 무엇이 당신을 두렵게 하나요?",
		Disgust:  "분명히 뭔가 당신을 불편하게 합니다. 구체적으로 무엇이 당신을 불편하게 하나요?",
		Surprise: "와! 정말 예상치 못한 일입니다! 무엇이 당신을 놀라게 했나요?",
		Neutral:  "당신의 진정성을 감사합니다. 무엇이 당신의 마음을 차지하고 있나요?",
	},
	"zh-cn": {
		Joy:      "太棒了! 我能感受到你的喜悦! 是什么给你带来了这样的幸福?",
		Sadness:  "我能感受到你言语中的悲伤。我在这里陪伴你。什么让你感到烦恼?",
		Anger:    "我能感受到你的沮丧。什么真正让你感到恼火?",
		Fear:     "我能感受到你的担忧。别担心，我在这里倾听。什么让你感到害怕?",
		Disgust:  "显然有什么让你感到不适。具体是什么让你感到厌恶?",
		Surprise: "哇! 多么意外的转折! 告诉我什么让你感到惊讶?",
		Neutral:  "我感谢你的坦诚。什么在占据你的思想?",
	},
	"ar": {
		Joy:      "هذا رائع! أستطيع أن أشعر بفرحك! ما الذي يجلب لك كل هذا السعادة?",
		Sadness:  "أشعر بالحزن في كلماتك. أنا هنا لك. ما الذي يقلقك?",
		Anger:    "أشعر بإحباطك. ما الذي يزعجك حقًا?",
		Fear:     "أشعر بقلقك. لا تقلق، أنا هنا لأستمع. ما الذي يخيفك?",
		Disgust:  "من الواضح أن هناك شيئًا لا يعجبك. ما الذي يزعجك تحديدًا?",
		Surprise: "واو! حقاً من الضحايا غير المتوقعة! أخبرني ما الذي فاجأك?",
		Neutral:  "أقدر صراحتك. ما الذي يشغل بالك?",
	},
	"hi": {
		Joy:      "बहुत अच्छा! मैं आपकी खुशी को महसूस कर सकता हूँ! क्या आपको ऐसी खुशी दे रहा है?",
		Sadness:  "मैं आपकी बातों में उदासी को महसूस करता हूँ। मैं आपके लिए यहाँ हूँ। आपको क्या परेशान कर रहा है?",
		Anger:    "मैं आपकी निराशा को महसूस करता हूँ। आपको वास्तव में क्या परेशान कर रहा है?",
		Fear:     "मैं आपकी चिंता को महसूस करता हूँ। चिंता मत करो, मैं सुनने के लिए यहाँ हूँ। आपको क्या डर लगता है?",
		Disgust:  "कुछ स्पष्ट रूप से आपको पसंद नहीं है। विशेष रूप से क्या आपको नापसंद है?",
		Surprise: "वाह! कितना अप्रत्याशित मोड़! बताइए आपको क्या आश्चर्य हुआ?",
		Neutral:  "मैं आपकी ईमानदारी की सराहना करता हूँ। आपके मन में क्या है?",
	},
}

// faceFallbackResponses 直播人脸情绪场景的静态话术
var faceFallbackResponses = map[Label]string{
	Joy:      "Your happiness is contagious! That smile brightens the stream. Keep sharing that joy with us! 😊",
	Sadness:  "I can see you're going through something tough. Remember, it's okay to feel sad. We're here for you. 💙",
	Anger:    "I sense some strong emotions there. Whatever's frustrating you, know that your feelings are valid. Want to talk about it?",
	Fear:     "It looks like something's worrying you. That's completely normal. You're safe here, and I'm listening. 💙",
	Disgust:  "Something seems off for you right now. Your feelings matter, and I'm here to listen without judgment.",
	Surprise: "Wow, you seem surprised! What just happened? Tell us more! 👀",
	Neutral:  "I see you're in a thoughtful mood. Whatever's on your mind, I'm here to listen and support you.",
}
