package sentiment

// Canned chatbot replies. The texts are part of the API contract with the
// existing client, so keep them byte-for-byte stable.
const (
	ReplyGreeting = "Hello! I'm here to chat about how you're feeling. How has your day been going?"

	ReplyDepressionSevere = "I notice you're expressing some difficult feelings. Depression can make everything feel overwhelming. Have you been able to talk to anyone about how you're feeling? Remember that seeking professional help is a sign of strength, not weakness."

	ReplyDepressionModerate = "It sounds like you might be going through a tough time. Sometimes talking about our feelings can help. What self-care activities have you found helpful in the past?"

	ReplyAnxietySevere = "It sounds like you're experiencing quite a bit of anxiety. When you feel anxious, try focusing on your breath. Slow, deep breaths can help calm your nervous system. Would you like to try a quick breathing exercise together?"

	ReplyAnxietyModerate = "I'm noticing some anxiety in your message. Sometimes our thoughts can spiral, making us more anxious than the situation warrants. Have you tried any mindfulness practices to stay present?"

	ReplyStressSevere = "You seem to be under a lot of stress right now. It's important to take breaks and practice self-care. What are some activities that help you relax and recharge?"

	ReplyStressModerate = "I can sense you're dealing with some stressors. Remember that it's okay to set boundaries and prioritize your wellbeing. What small step could you take today to reduce your stress level?"

	ReplySleep = "Sleep issues can significantly impact mental health. Establishing a regular sleep routine, avoiding screens before bedtime, and creating a comfortable sleep environment can help. Have you tried any sleep hygiene techniques?"

	ReplyExercise = "Exercise can be a powerful tool for managing mental health. Even a short walk can release endorphins that improve mood. What types of physical activity do you enjoy?"

	ReplyMindfulness = "Mindfulness practices like meditation can help ground us when emotions feel overwhelming. Even just 5 minutes of focused breathing can make a difference. Would you like some guided meditation recommendations?"

	ReplyThanks = "You're welcome! Remember that taking care of your mental health is an ongoing journey. I'm here whenever you want to talk."

	ReplyFallback = "I'm here to support you through your mental health journey. How are you feeling right now? You can talk about anything that's on your mind."
)

// RecommendationNoData is returned when the user has no chat history to
// analyze.
const RecommendationNoData = "Not enough data to provide analysis. Please continue chatting with our AI assistant."
